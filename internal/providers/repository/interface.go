package repository

import (
	"context"

	"github.com/google/uuid"
)

// ProviderRepository defines the interface for provider data operations.
// Services depend on this abstraction so tests can substitute fakes.
type ProviderRepository interface {
	CreateProvider(ctx context.Context, fullName, email, phone, passwordHash, companyName, licenseNumber, slug string) (Provider, error)
	GetByEmail(ctx context.Context, email string) (Provider, error)
	GetByID(ctx context.Context, id uuid.UUID) (Provider, error)
	GetBySlug(ctx context.Context, slug string) (Provider, error)
}

// Ensure Repository implements ProviderRepository
var _ ProviderRepository = (*Repository)(nil)
