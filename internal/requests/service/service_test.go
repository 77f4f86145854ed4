package service

import (
	"context"
	"math"
	"sort"
	"testing"
	"time"

	domainevents "salonhub_backend/internal/events"
	"salonhub_backend/internal/requests/repository"
	"salonhub_backend/platform/apperr"
	"salonhub_backend/platform/events"
	"salonhub_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	requests map[uuid.UUID]repository.Request
	seq      int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{requests: make(map[uuid.UUID]repository.Request)}
}

func (f *fakeRepo) CreateRequest(_ context.Context, params repository.CreateRequestParams) (repository.Request, error) {
	f.seq++
	r := repository.Request{
		ID:            uuid.New(),
		ProviderID:    params.ProviderID,
		CustomerName:  params.CustomerName,
		CustomerPhone: params.CustomerPhone,
		CustomerNote:  params.CustomerNote,
		ServiceIDs:    append([]uuid.UUID{}, params.ServiceIDs...),
		Status:        repository.StatusPending,
		CreatedAt:     time.Unix(int64(f.seq), 0),
	}
	f.requests[r.ID] = r
	return r, nil
}

func (f *fakeRepo) ListByProvider(_ context.Context, providerID uuid.UUID) ([]repository.Request, error) {
	matched := make([]repository.Request, 0)
	for _, r := range f.requests {
		if r.ProviderID == providerID {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id, providerID uuid.UUID, status string) (repository.Request, error) {
	r, ok := f.requests[id]
	if !ok || r.ProviderID != providerID {
		return repository.Request{}, apperr.NotFound("Request not found")
	}
	r.Status = status
	f.requests[id] = r
	return r, nil
}

var _ repository.Repository = (*fakeRepo)(nil)

type fakeResolver struct {
	services map[uuid.UUID]ResolvedService
}

func (f *fakeResolver) GetServicesByIDs(_ context.Context, ids []uuid.UUID) ([]ResolvedService, error) {
	out := make([]ResolvedService, 0, len(ids))
	for _, id := range ids {
		if svc, ok := f.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func newTestService() (*Service, *fakeRepo, *fakeResolver, *recordingBus) {
	repo := newFakeRepo()
	resolver := &fakeResolver{services: make(map[uuid.UUID]ResolvedService)}
	bus := &recordingBus{}
	svc := New(repo, resolver, bus, logger.New("development"))
	return svc, repo, resolver, bus
}

func addService(resolver *fakeResolver, name string, base, vat, discount float64) uuid.UUID {
	id := uuid.New()
	resolver.services[id] = ResolvedService{
		ID:             id,
		CategoryID:     uuid.New(),
		ServiceName:    name,
		BasePrice:      base,
		VATPercent:     vat,
		DiscountAmount: discount,
	}
	return id
}

func TestSubmit(t *testing.T) {
	svc, _, resolver, bus := newTestService()
	providerID := uuid.New()
	haircut := addService(resolver, "Haircut", 50, 15, 5)

	request, err := svc.Submit(context.Background(), SubmitInput{
		ProviderID:    providerID,
		ServiceIDs:    []uuid.UUID{haircut},
		CustomerName:  "Jane",
		CustomerPhone: "+15551234567",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if request.Status != repository.StatusPending {
		t.Fatalf("status = %q, want pending", request.Status)
	}
	if len(request.ServiceIDs) != 1 || request.ServiceIDs[0] != haircut {
		t.Fatalf("snapshot mismatch: %v", request.ServiceIDs)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(bus.published))
	}
	evt, ok := bus.published[0].(domainevents.RequestSubmitted)
	if !ok {
		t.Fatalf("unexpected event type %T", bus.published[0])
	}
	if evt.RequestID != request.ID || evt.ProviderID != providerID {
		t.Fatal("event carries wrong ids")
	}
}

func TestSubmitRequiredFields(t *testing.T) {
	svc, repo, _, _ := newTestService()

	cases := []SubmitInput{
		{ProviderID: uuid.New(), CustomerPhone: "+15551234567"},
		{ProviderID: uuid.New(), CustomerName: "Jane"},
		{ProviderID: uuid.New(), CustomerName: "   ", CustomerPhone: "  "},
	}
	for i, in := range cases {
		_, err := svc.Submit(context.Background(), in)
		if apperr.GetKind(err) != apperr.KindValidation {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
		if err.(*apperr.Error).Message != "Please fill required fields" {
			t.Fatalf("case %d: unexpected message: %v", i, err)
		}
	}
	if len(repo.requests) != 0 {
		t.Fatal("request stored despite validation failure")
	}
}

func TestSubmitTrustsIDsVerbatim(t *testing.T) {
	svc, repo, _, _ := newTestService()

	// Neither the provider nor the services exist anywhere; intake stores
	// them as given.
	ghostProvider := uuid.New()
	ghostService := uuid.New()
	request, err := svc.Submit(context.Background(), SubmitInput{
		ProviderID:    ghostProvider,
		ServiceIDs:    []uuid.UUID{ghostService},
		CustomerName:  "Jane",
		CustomerPhone: "+15551234567",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	stored := repo.requests[request.ID]
	if stored.ProviderID != ghostProvider || stored.ServiceIDs[0] != ghostService {
		t.Fatal("intake altered the submitted ids")
	}
}

func TestListWithTotals(t *testing.T) {
	svc, _, resolver, _ := newTestService()
	providerID := uuid.New()
	haircut := addService(resolver, "Haircut", 50, 15, 5)
	coloring := addService(resolver, "Coloring", 100, 0, 10)

	if _, err := svc.Submit(context.Background(), SubmitInput{
		ProviderID:    providerID,
		ServiceIDs:    []uuid.UUID{haircut, coloring},
		CustomerName:  "Jane",
		CustomerPhone: "+15551234567",
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	items, err := svc.ListWithTotals(context.Background(), providerID)
	if err != nil {
		t.Fatalf("ListWithTotals: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d requests, want 1", len(items))
	}
	if len(items[0].Services) != 2 {
		t.Fatalf("got %d resolved services, want 2", len(items[0].Services))
	}
	// 52.5 + 90
	if math.Abs(items[0].Total-142.5) > 1e-9 {
		t.Fatalf("total = %v, want 142.5", items[0].Total)
	}
}

func TestListWithTotalsDroppedService(t *testing.T) {
	svc, _, resolver, _ := newTestService()
	providerID := uuid.New()
	haircut := addService(resolver, "Haircut", 50, 15, 5)
	coloring := addService(resolver, "Coloring", 100, 0, 10)

	if _, err := svc.Submit(context.Background(), SubmitInput{
		ProviderID:    providerID,
		ServiceIDs:    []uuid.UUID{haircut, coloring},
		CustomerName:  "Jane",
		CustomerPhone: "+15551234567",
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Delete coloring from the catalog after submission. The snapshot keeps
	// its id; the listing drops it from the resolved list and the total.
	delete(resolver.services, coloring)

	items, err := svc.ListWithTotals(context.Background(), providerID)
	if err != nil {
		t.Fatalf("ListWithTotals: %v", err)
	}
	if len(items[0].Request.ServiceIDs) != 2 {
		t.Fatal("stored snapshot lost an id")
	}
	if len(items[0].Services) != 1 || items[0].Services[0].ServiceName != "Haircut" {
		t.Fatalf("resolved list = %+v, want only Haircut", items[0].Services)
	}
	if math.Abs(items[0].Total-52.5) > 1e-9 {
		t.Fatalf("total = %v, want 52.5", items[0].Total)
	}
}

func TestListWithTotalsNewestFirst(t *testing.T) {
	svc, _, _, _ := newTestService()
	providerID := uuid.New()

	first, err := svc.Submit(context.Background(), SubmitInput{
		ProviderID: providerID, CustomerName: "Jane", CustomerPhone: "+15551234567",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	second, err := svc.Submit(context.Background(), SubmitInput{
		ProviderID: providerID, CustomerName: "Ann", CustomerPhone: "+15557654321",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	items, err := svc.ListWithTotals(context.Background(), providerID)
	if err != nil {
		t.Fatalf("ListWithTotals: %v", err)
	}
	if items[0].Request.ID != second.ID || items[1].Request.ID != first.ID {
		t.Fatal("requests not ordered newest first")
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, _, _, bus := newTestService()
	providerID := uuid.New()

	request, err := svc.Submit(context.Background(), SubmitInput{
		ProviderID: providerID, CustomerName: "Jane", CustomerPhone: "+15551234567",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), request.ID, providerID, repository.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != repository.StatusCompleted {
		t.Fatalf("status = %q, want completed", updated.Status)
	}

	// The status field is a plain setter: a second transition from completed
	// to cancelled is accepted. Current behavior, not a state machine.
	overwritten, err := svc.UpdateStatus(context.Background(), request.ID, providerID, repository.StatusCancelled)
	if err != nil {
		t.Fatalf("re-transition rejected: %v", err)
	}
	if overwritten.Status != repository.StatusCancelled {
		t.Fatalf("status = %q, want cancelled", overwritten.Status)
	}

	var statusEvents int
	for _, evt := range bus.published {
		if _, ok := evt.(domainevents.RequestStatusChanged); ok {
			statusEvents++
		}
	}
	if statusEvents != 2 {
		t.Fatalf("expected 2 status events, got %d", statusEvents)
	}
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), "archived")
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateStatusForeignProvider(t *testing.T) {
	svc, _, _, _ := newTestService()
	owner := uuid.New()

	request, err := svc.Submit(context.Background(), SubmitInput{
		ProviderID: owner, CustomerName: "Jane", CustomerPhone: "+15551234567",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// A foreign provider reads as not found; ownership and existence are
	// deliberately conflated here.
	_, err = svc.UpdateStatus(context.Background(), request.ID, uuid.New(), repository.StatusCompleted)
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
