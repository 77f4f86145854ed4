package service

import (
	"context"

	"salonhub_backend/internal/catalog/repository"
	"salonhub_backend/internal/shared/pricing"

	"github.com/google/uuid"
)

// ProviderSummary is the provider shape exposed on the public catalog.
type ProviderSummary struct {
	ID          uuid.UUID
	FullName    string
	CompanyName string
	Email       string
	Phone       string
	Slug        string
}

// ProviderReader resolves a public catalog key (provider id or slug) to a
// provider summary. Implemented by an adapter over the providers module.
type ProviderReader interface {
	GetByIDOrSlug(ctx context.Context, key string) (ProviderSummary, error)
}

// PricedService pairs a service with its computed total.
type PricedService struct {
	Service repository.Service
	Total   float64
}

// CatalogCategory is one category in the assembled public catalog.
type CatalogCategory struct {
	Category repository.Category
	Services []PricedService
}

// PublicCatalog is the read-only nested view served to anonymous customers.
type PublicCatalog struct {
	Provider ProviderSummary
	Catalog  []CatalogCategory
}

// GetPublicCatalog assembles the anonymous catalog view for a provider
// addressed by id or slug: active categories only, all of the provider's
// services grouped under them, computed totals attached. Categories without
// services still appear with an empty list.
func (s *Service) GetPublicCatalog(ctx context.Context, providerKey string) (PublicCatalog, error) {
	provider, err := s.providers.GetByIDOrSlug(ctx, providerKey)
	if err != nil {
		return PublicCatalog{}, err
	}

	categories, err := s.repo.ListActiveCategories(ctx, provider.ID)
	if err != nil {
		return PublicCatalog{}, err
	}

	services, err := s.repo.ListServicesByProvider(ctx, provider.ID)
	if err != nil {
		return PublicCatalog{}, err
	}

	byCategory := make(map[uuid.UUID][]PricedService, len(categories))
	for _, svc := range services {
		byCategory[svc.CategoryID] = append(byCategory[svc.CategoryID], PricedService{
			Service: svc,
			Total:   pricing.Total(svc.BasePrice, svc.VATPercent, svc.DiscountAmount),
		})
	}

	catalog := make([]CatalogCategory, 0, len(categories))
	for _, category := range categories {
		grouped := byCategory[category.ID]
		if grouped == nil {
			grouped = []PricedService{}
		}
		catalog = append(catalog, CatalogCategory{Category: category, Services: grouped})
	}

	return PublicCatalog{Provider: provider, Catalog: catalog}, nil
}
