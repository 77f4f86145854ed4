package service

import (
	"context"
	"math"
	"testing"

	"salonhub_backend/internal/catalog/repository"
	"salonhub_backend/platform/apperr"

	"github.com/google/uuid"
)

func seedProvider(providers *fakeProviderReader) ProviderSummary {
	summary := ProviderSummary{
		ID:          uuid.New(),
		FullName:    "Maria Lopez",
		CompanyName: "Luxury Looks",
		Email:       "maria@example.com",
		Phone:       "+12125550175",
		Slug:        "luxury-looks",
	}
	providers.providers[summary.ID.String()] = summary
	providers.providers[summary.Slug] = summary
	return summary
}

func TestPublicCatalogAssembly(t *testing.T) {
	svc, _, providers := newTestService()
	provider := seedProvider(providers)

	category := mustCreateCategory(t, svc, provider.ID, "Hair Services", repository.StatusActive)
	mustCreateService(t, svc, provider.ID, category.ID, "Haircut", 50, 15, 5)

	catalog, err := svc.GetPublicCatalog(context.Background(), provider.Slug)
	if err != nil {
		t.Fatalf("GetPublicCatalog: %v", err)
	}

	if catalog.Provider.ID != provider.ID {
		t.Fatal("wrong provider resolved")
	}
	if len(catalog.Catalog) != 1 {
		t.Fatalf("got %d categories, want 1", len(catalog.Catalog))
	}
	entry := catalog.Catalog[0]
	if entry.Category.Title != "Hair Services" {
		t.Fatalf("category title = %q", entry.Category.Title)
	}
	if len(entry.Services) != 1 {
		t.Fatalf("got %d services, want 1", len(entry.Services))
	}
	if entry.Services[0].Service.ServiceName != "Haircut" {
		t.Fatalf("service name = %q", entry.Services[0].Service.ServiceName)
	}
	if math.Abs(entry.Services[0].Total-52.5) > 1e-9 {
		t.Fatalf("total = %v, want 52.5", entry.Services[0].Total)
	}
}

func TestPublicCatalogByID(t *testing.T) {
	svc, _, providers := newTestService()
	provider := seedProvider(providers)

	mustCreateCategory(t, svc, provider.ID, "Hair Services", repository.StatusActive)

	catalog, err := svc.GetPublicCatalog(context.Background(), provider.ID.String())
	if err != nil {
		t.Fatalf("GetPublicCatalog by id: %v", err)
	}
	if catalog.Provider.Slug != "luxury-looks" {
		t.Fatal("id lookup resolved wrong provider")
	}
}

func TestPublicCatalogExcludesInactiveCategories(t *testing.T) {
	svc, _, providers := newTestService()
	provider := seedProvider(providers)

	active := mustCreateCategory(t, svc, provider.ID, "Hair Services", repository.StatusActive)
	archived := mustCreateCategory(t, svc, provider.ID, "Archived", repository.StatusInactive)
	mustCreateService(t, svc, provider.ID, archived.ID, "Old Perm", 30, 0, 0)

	catalog, err := svc.GetPublicCatalog(context.Background(), provider.Slug)
	if err != nil {
		t.Fatalf("GetPublicCatalog: %v", err)
	}
	if len(catalog.Catalog) != 1 {
		t.Fatalf("got %d categories, want 1", len(catalog.Catalog))
	}
	if catalog.Catalog[0].Category.ID != active.ID {
		t.Fatal("inactive category leaked into public catalog")
	}

	// The inactive category still shows in the provider's private listing.
	items, _, err := svc.ListCategories(context.Background(), provider.ID, PageQuery{})
	if err != nil {
		t.Fatalf("private listing: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("private listing has %d categories, want 2", len(items))
	}
}

func TestPublicCatalogIncludesEmptyCategories(t *testing.T) {
	svc, _, providers := newTestService()
	provider := seedProvider(providers)

	mustCreateCategory(t, svc, provider.ID, "Coming Soon", repository.StatusActive)

	catalog, err := svc.GetPublicCatalog(context.Background(), provider.Slug)
	if err != nil {
		t.Fatalf("GetPublicCatalog: %v", err)
	}
	if len(catalog.Catalog) != 1 {
		t.Fatalf("got %d categories, want 1", len(catalog.Catalog))
	}
	if catalog.Catalog[0].Services == nil || len(catalog.Catalog[0].Services) != 0 {
		t.Fatalf("empty category should carry an empty service list, got %v", catalog.Catalog[0].Services)
	}
}

func TestPublicCatalogUnknownProvider(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetPublicCatalog(context.Background(), "missing-salon")
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
