// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the authenticated provider's identity.
// This interface abstracts identity extraction from the web framework,
// allowing handlers to access the acting provider without depending on Gin.
type Identity interface {
	// ProviderID returns the authenticated provider's ID.
	ProviderID() uuid.UUID
	// IsAuthenticated returns true if the caller is authenticated.
	IsAuthenticated() bool
}

// identity is the concrete implementation of Identity.
type identity struct {
	providerID    uuid.UUID
	authenticated bool
}

func (i *identity) ProviderID() uuid.UUID {
	return i.providerID
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if provider info is not present.
func GetIdentity(c *gin.Context) Identity {
	providerID, ok := c.Get(ContextProviderIDKey)
	if !ok {
		return &identity{authenticated: false}
	}

	pid, ok := providerID.(uuid.UUID)
	if !ok {
		return &identity{authenticated: false}
	}

	return &identity{providerID: pid, authenticated: true}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the caller is not authenticated, it aborts with 401 Unauthorized and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	return id
}
