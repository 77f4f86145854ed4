package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Category statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Category is a named grouping of services belonging to one provider.
type Category struct {
	ID          uuid.UUID `db:"id"`
	ProviderID  uuid.UUID `db:"provider_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Image       *string   `db:"image"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Service is a priced offering belonging to one category and one provider.
// The total price is always derived at read time, never stored.
type Service struct {
	ID             uuid.UUID `db:"id"`
	ProviderID     uuid.UUID `db:"provider_id"`
	CategoryID     uuid.UUID `db:"category_id"`
	ServiceName    string    `db:"service_name"`
	BasePrice      float64   `db:"base_price"`
	VATPercent     float64   `db:"vat_percent"`
	DiscountAmount float64   `db:"discount_amount"`
	Image          *string   `db:"image"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// CreateCategoryParams contains data for creating a category.
type CreateCategoryParams struct {
	ProviderID  uuid.UUID
	Title       string
	Description *string
	Image       *string
	Status      string
}

// UpdateCategoryParams contains data for updating a category in place.
// Nil fields keep their current value (COALESCE semantics).
type UpdateCategoryParams struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Image       *string
	Status      *string
}

// ListCategoriesParams defines filters for a provider-scoped category listing.
type ListCategoriesParams struct {
	ProviderID uuid.UUID
	Search     string
	Offset     int
	Limit      int
}

// CreateServiceParams contains data for creating a service.
type CreateServiceParams struct {
	ProviderID     uuid.UUID
	CategoryID     uuid.UUID
	ServiceName    string
	BasePrice      float64
	VATPercent     float64
	DiscountAmount float64
	Image          *string
}

// UpdateServiceParams contains data for updating a service in place.
type UpdateServiceParams struct {
	ID             uuid.UUID
	CategoryID     *uuid.UUID
	ServiceName    *string
	BasePrice      *float64
	VATPercent     *float64
	DiscountAmount *float64
	Image          *string
}

// ListServicesParams defines filters for a provider-scoped service listing.
type ListServicesParams struct {
	ProviderID uuid.UUID
	Search     string
	CategoryID *uuid.UUID
	Offset     int
	Limit      int
}

// Repository defines catalog storage operations.
// Get-by-id lookups are deliberately unscoped: the service layer fetches the
// row first and then applies the ownership guard, so a foreign resource is
// reported as forbidden rather than silently missing.
type Repository interface {
	CreateCategory(ctx context.Context, params CreateCategoryParams) (Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (Category, error)
	UpdateCategory(ctx context.Context, params UpdateCategoryParams) (Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context, params ListCategoriesParams) ([]Category, int, error)
	ListActiveCategories(ctx context.Context, providerID uuid.UUID) ([]Category, error)

	CreateService(ctx context.Context, params CreateServiceParams) (Service, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (Service, error)
	UpdateService(ctx context.Context, params UpdateServiceParams) (Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
	ListServices(ctx context.Context, params ListServicesParams) ([]Service, int, error)
	ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]Service, error)
	GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]Service, error)
}
