package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Request statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Request is a customer-submitted lead. ServiceIDs is the snapshot captured
// at submission; it is never re-validated against the live catalog.
type Request struct {
	ID            uuid.UUID   `db:"id"`
	ProviderID    uuid.UUID   `db:"provider_id"`
	CustomerName  string      `db:"customer_name"`
	CustomerPhone string      `db:"customer_phone"`
	CustomerNote  *string     `db:"customer_note"`
	ServiceIDs    []uuid.UUID `db:"service_ids"`
	Status        string      `db:"status"`
	CreatedAt     time.Time   `db:"created_at"`
}

// CreateRequestParams contains data for recording a request.
type CreateRequestParams struct {
	ProviderID    uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerNote  *string
	ServiceIDs    []uuid.UUID
}

// Repository defines request storage operations.
type Repository interface {
	// CreateRequest records a new request in status pending.
	CreateRequest(ctx context.Context, params CreateRequestParams) (Request, error)
	// ListByProvider returns a provider's requests, newest first.
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]Request, error)
	// UpdateStatus sets a request's status, scoped to the owning provider.
	// A missing or foreign request is reported as not found.
	UpdateStatus(ctx context.Context, id, providerID uuid.UUID, status string) (Request, error)
}
