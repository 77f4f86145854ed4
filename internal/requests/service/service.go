// Package service implements request intake, aggregation, and status updates.
package service

import (
	"context"
	"strings"

	domainevents "salonhub_backend/internal/events"
	"salonhub_backend/internal/requests/repository"
	"salonhub_backend/internal/shared/pricing"
	"salonhub_backend/platform/apperr"
	"salonhub_backend/platform/events"
	"salonhub_backend/platform/logger"
	"salonhub_backend/platform/phone"
	"salonhub_backend/platform/sanitize"

	"github.com/google/uuid"
)

// ResolvedService is a snapshot id resolved against the current catalog.
type ResolvedService struct {
	ID             uuid.UUID
	CategoryID     uuid.UUID
	ServiceName    string
	BasePrice      float64
	VATPercent     float64
	DiscountAmount float64
	Image          *string
}

// ServiceResolver resolves service ids against the live catalog. Missing ids
// are absent from the result. Implemented by an adapter over the catalog
// module.
type ServiceResolver interface {
	GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]ResolvedService, error)
}

// PricedService pairs a resolved service with its computed total.
type PricedService struct {
	ResolvedService
	Total float64
}

// RequestWithTotals is a stored request joined with its currently resolvable
// services and the summed total.
type RequestWithTotals struct {
	Request  repository.Request
	Services []PricedService
	Total    float64
}

type Service struct {
	repo     repository.Repository
	resolver ServiceResolver
	bus      events.Bus
	log      *logger.Logger
}

func New(repo repository.Repository, resolver ServiceResolver, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, resolver: resolver, bus: bus, log: log}
}

// SubmitInput carries the anonymous intake fields.
type SubmitInput struct {
	ProviderID    uuid.UUID
	ServiceIDs    []uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerNote  *string
}

// Submit records a customer request. The provider id and service ids are
// stored verbatim without existence checks; integrity is enforced at display
// time, not at this trust boundary.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (repository.Request, error) {
	name := sanitize.Text(in.CustomerName)
	rawPhone := strings.TrimSpace(in.CustomerPhone)
	if name == "" || rawPhone == "" {
		return repository.Request{}, apperr.Validation("Please fill required fields")
	}

	customerPhone, err := phone.Normalize(rawPhone)
	if err != nil {
		// Best-effort normalization; an unparseable number is stored as given.
		customerPhone = rawPhone
	}

	serviceIDs := in.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []uuid.UUID{}
	}

	request, err := s.repo.CreateRequest(ctx, repository.CreateRequestParams{
		ProviderID:    in.ProviderID,
		CustomerName:  name,
		CustomerPhone: customerPhone,
		CustomerNote:  sanitize.TextPtr(in.CustomerNote),
		ServiceIDs:    serviceIDs,
	})
	if err != nil {
		return repository.Request{}, err
	}

	note := ""
	if request.CustomerNote != nil {
		note = *request.CustomerNote
	}
	s.bus.Publish(ctx, domainevents.NewRequestSubmitted(
		request.ID, request.ProviderID, request.CustomerName, request.CustomerPhone, note, request.ServiceIDs,
	))

	return request, nil
}

// ListWithTotals returns the provider's requests, newest first, each with its
// snapshot ids resolved against the current catalog and totals summed.
// Services deleted since submission are silently dropped; the listing never
// fails to produce a number.
func (s *Service) ListWithTotals(ctx context.Context, providerID uuid.UUID) ([]RequestWithTotals, error) {
	requests, err := s.repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	// One resolution pass across all requests keeps the listing a single
	// catalog round trip.
	idSet := make(map[uuid.UUID]struct{})
	for _, req := range requests {
		for _, id := range req.ServiceIDs {
			idSet[id] = struct{}{}
		}
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	resolved, err := s.resolver.GetServicesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]ResolvedService, len(resolved))
	for _, svc := range resolved {
		byID[svc.ID] = svc
	}

	out := make([]RequestWithTotals, 0, len(requests))
	for _, req := range requests {
		entry := RequestWithTotals{Request: req, Services: []PricedService{}}
		for _, id := range req.ServiceIDs {
			svc, ok := byID[id]
			if !ok {
				continue
			}
			total := pricing.Total(svc.BasePrice, svc.VATPercent, svc.DiscountAmount)
			entry.Services = append(entry.Services, PricedService{ResolvedService: svc, Total: total})
			entry.Total += total
		}
		out = append(out, entry)
	}

	return out, nil
}

// UpdateStatus moves a request to a new status on behalf of the owning
// provider. Any valid status may overwrite any other; there is no state
// machine beyond the field itself.
func (s *Service) UpdateStatus(ctx context.Context, id, providerID uuid.UUID, status string) (repository.Request, error) {
	if !validStatus(status) {
		return repository.Request{}, apperr.Validation("Status must be pending, completed or cancelled")
	}

	request, err := s.repo.UpdateStatus(ctx, id, providerID, status)
	if err != nil {
		return repository.Request{}, err
	}

	s.bus.Publish(ctx, domainevents.NewRequestStatusChanged(request.ID, request.ProviderID, request.Status))
	return request, nil
}

func validStatus(status string) bool {
	switch status {
	case repository.StatusPending, repository.StatusCompleted, repository.StatusCancelled:
		return true
	}
	return false
}
