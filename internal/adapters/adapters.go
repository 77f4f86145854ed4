// Package adapters contains the anti-corruption layer between bounded
// contexts: each module depends only on its own port interfaces, and the
// composition root wires these adapters in.
package adapters

import (
	"context"

	catalogservice "salonhub_backend/internal/catalog/service"
	"salonhub_backend/internal/notification"
	providerservice "salonhub_backend/internal/providers/service"
	requestservice "salonhub_backend/internal/requests/service"

	"github.com/google/uuid"
)

// CatalogProviderReader adapts the providers module to the catalog module's
// ProviderReader port for public catalog assembly.
type CatalogProviderReader struct {
	svc *providerservice.Service
}

func NewCatalogProviderReader(svc *providerservice.Service) *CatalogProviderReader {
	return &CatalogProviderReader{svc: svc}
}

func (a *CatalogProviderReader) GetByIDOrSlug(ctx context.Context, key string) (catalogservice.ProviderSummary, error) {
	provider, err := a.svc.GetByIDOrSlug(ctx, key)
	if err != nil {
		return catalogservice.ProviderSummary{}, err
	}

	return catalogservice.ProviderSummary{
		ID:          provider.ID,
		FullName:    provider.FullName,
		CompanyName: provider.CompanyName,
		Email:       provider.Email,
		Phone:       provider.Phone,
		Slug:        provider.Slug,
	}, nil
}

var _ catalogservice.ProviderReader = (*CatalogProviderReader)(nil)

// RequestServiceResolver adapts the catalog module to the requests module's
// ServiceResolver port for snapshot aggregation.
type RequestServiceResolver struct {
	svc *catalogservice.Service
}

func NewRequestServiceResolver(svc *catalogservice.Service) *RequestServiceResolver {
	return &RequestServiceResolver{svc: svc}
}

func (a *RequestServiceResolver) GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]requestservice.ResolvedService, error) {
	services, err := a.svc.GetServicesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]requestservice.ResolvedService, 0, len(services))
	for _, svc := range services {
		out = append(out, requestservice.ResolvedService{
			ID:             svc.ID,
			CategoryID:     svc.CategoryID,
			ServiceName:    svc.ServiceName,
			BasePrice:      svc.BasePrice,
			VATPercent:     svc.VATPercent,
			DiscountAmount: svc.DiscountAmount,
			Image:          svc.Image,
		})
	}
	return out, nil
}

var _ requestservice.ServiceResolver = (*RequestServiceResolver)(nil)

// NotificationProviderDirectory adapts the providers module to the
// notification module's recipient lookup port.
type NotificationProviderDirectory struct {
	svc *providerservice.Service
}

func NewNotificationProviderDirectory(svc *providerservice.Service) *NotificationProviderDirectory {
	return &NotificationProviderDirectory{svc: svc}
}

func (a *NotificationProviderDirectory) GetRecipient(ctx context.Context, providerID uuid.UUID) (notification.Recipient, error) {
	provider, err := a.svc.GetProfile(ctx, providerID)
	if err != nil {
		return notification.Recipient{}, err
	}

	return notification.Recipient{
		Email:       provider.Email,
		FullName:    provider.FullName,
		CompanyName: provider.CompanyName,
		Slug:        provider.Slug,
	}, nil
}

var _ notification.ProviderDirectory = (*NotificationProviderDirectory)(nil)
