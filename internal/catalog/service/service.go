// Package service implements the catalog business logic: tenant-scoped
// category and service management with ownership enforcement.
package service

import (
	"context"

	"salonhub_backend/internal/catalog/repository"
	"salonhub_backend/internal/shared/ownership"
	"salonhub_backend/platform/apperr"
	"salonhub_backend/platform/logger"
	"salonhub_backend/platform/sanitize"

	"github.com/google/uuid"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type Service struct {
	repo      repository.Repository
	providers ProviderReader
	log       *logger.Logger
}

func New(repo repository.Repository, providers ProviderReader, log *logger.Logger) *Service {
	return &Service{repo: repo, providers: providers, log: log}
}

// PageQuery carries raw pagination and search input from the transport layer.
type PageQuery struct {
	Page   int
	Limit  int
	Search string
}

// PageMeta is the pagination metadata returned alongside listing data.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// normalize clamps the query: page >= 1, limit in [1, maxPageLimit] with a
// default when unset.
func (q PageQuery) normalize() (page, limit, offset int) {
	page = q.Page
	if page < 1 {
		page = 1
	}

	limit = q.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return page, limit, (page - 1) * limit
}

func pageMeta(page, limit, total int) PageMeta {
	totalPages := (total + limit - 1) / limit
	return PageMeta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// CategoryInput carries the mutable category fields.
type CategoryInput struct {
	Title       *string
	Description *string
	Image       *string
	Status      *string
}

// CreateCategory creates a category owned by the acting provider.
func (s *Service) CreateCategory(ctx context.Context, providerID uuid.UUID, in CategoryInput) (repository.Category, error) {
	if in.Title == nil || sanitize.Text(*in.Title) == "" {
		return repository.Category{}, apperr.Validation("Title is required")
	}

	status := repository.StatusActive
	if in.Status != nil {
		if err := validateStatus(*in.Status); err != nil {
			return repository.Category{}, err
		}
		status = *in.Status
	}

	title := sanitize.Text(*in.Title)
	return s.repo.CreateCategory(ctx, repository.CreateCategoryParams{
		ProviderID:  providerID,
		Title:       title,
		Description: sanitize.TextPtr(in.Description),
		Image:       in.Image,
		Status:      status,
	})
}

// GetCategory returns one of the acting provider's categories.
func (s *Service) GetCategory(ctx context.Context, providerID, id uuid.UUID) (repository.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return repository.Category{}, err
	}
	if err := ownership.Authorize("catalog.getCategory", providerID, category.ProviderID); err != nil {
		return repository.Category{}, err
	}
	return category, nil
}

// ListCategories lists the acting provider's categories with search and
// clamped pagination.
func (s *Service) ListCategories(ctx context.Context, providerID uuid.UUID, q PageQuery) ([]repository.Category, PageMeta, error) {
	page, limit, offset := q.normalize()

	items, total, err := s.repo.ListCategories(ctx, repository.ListCategoriesParams{
		ProviderID: providerID,
		Search:     q.Search,
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		return nil, PageMeta{}, err
	}

	return items, pageMeta(page, limit, total), nil
}

// UpdateCategory mutates a category after the ownership guard passes.
func (s *Service) UpdateCategory(ctx context.Context, providerID, id uuid.UUID, in CategoryInput) (repository.Category, error) {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return repository.Category{}, err
	}
	if err := ownership.Authorize("catalog.updateCategory", providerID, category.ProviderID); err != nil {
		return repository.Category{}, err
	}

	if in.Status != nil {
		if err := validateStatus(*in.Status); err != nil {
			return repository.Category{}, err
		}
	}
	if in.Title != nil && sanitize.Text(*in.Title) == "" {
		return repository.Category{}, apperr.Validation("Title is required")
	}

	return s.repo.UpdateCategory(ctx, repository.UpdateCategoryParams{
		ID:          id,
		Title:       sanitize.TextPtr(in.Title),
		Description: sanitize.TextPtr(in.Description),
		Image:       in.Image,
		Status:      in.Status,
	})
}

// DeleteCategory removes a category after the ownership guard passes.
// Hard delete: services under the category keep their dangling reference.
func (s *Service) DeleteCategory(ctx context.Context, providerID, id uuid.UUID) error {
	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownership.Authorize("catalog.deleteCategory", providerID, category.ProviderID); err != nil {
		return err
	}

	return s.repo.DeleteCategory(ctx, id)
}

// ServiceInput carries the mutable service fields.
type ServiceInput struct {
	CategoryID     *uuid.UUID
	ServiceName    *string
	BasePrice      *float64
	VATPercent     *float64
	DiscountAmount *float64
	Image          *string
}

// CreateService creates a service under one of the acting provider's
// categories. The referenced category must exist and belong to the actor.
func (s *Service) CreateService(ctx context.Context, providerID uuid.UUID, in ServiceInput) (repository.Service, error) {
	if in.ServiceName == nil || sanitize.Text(*in.ServiceName) == "" ||
		in.CategoryID == nil || in.BasePrice == nil {
		return repository.Service{}, apperr.Validation("Please fill required fields")
	}

	if err := s.validateCategoryOwnership(ctx, providerID, *in.CategoryID); err != nil {
		return repository.Service{}, err
	}

	vat := 0.0
	if in.VATPercent != nil {
		vat = *in.VATPercent
	}
	discount := 0.0
	if in.DiscountAmount != nil {
		discount = *in.DiscountAmount
	}

	return s.repo.CreateService(ctx, repository.CreateServiceParams{
		ProviderID:     providerID,
		CategoryID:     *in.CategoryID,
		ServiceName:    sanitize.Text(*in.ServiceName),
		BasePrice:      *in.BasePrice,
		VATPercent:     vat,
		DiscountAmount: discount,
		Image:          in.Image,
	})
}

// GetService returns one of the acting provider's services.
func (s *Service) GetService(ctx context.Context, providerID, id uuid.UUID) (repository.Service, error) {
	svc, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		return repository.Service{}, err
	}
	if err := ownership.Authorize("catalog.getService", providerID, svc.ProviderID); err != nil {
		return repository.Service{}, err
	}
	return svc, nil
}

// ListServices lists the acting provider's services with search, optional
// category filter, and clamped pagination.
func (s *Service) ListServices(ctx context.Context, providerID uuid.UUID, q PageQuery, categoryID *uuid.UUID) ([]repository.Service, PageMeta, error) {
	page, limit, offset := q.normalize()

	items, total, err := s.repo.ListServices(ctx, repository.ListServicesParams{
		ProviderID: providerID,
		Search:     q.Search,
		CategoryID: categoryID,
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		return nil, PageMeta{}, err
	}

	return items, pageMeta(page, limit, total), nil
}

// UpdateService mutates a service after the ownership guard passes.
// Re-categorization re-validates category ownership.
func (s *Service) UpdateService(ctx context.Context, providerID, id uuid.UUID, in ServiceInput) (repository.Service, error) {
	svc, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		return repository.Service{}, err
	}
	if err := ownership.Authorize("catalog.updateService", providerID, svc.ProviderID); err != nil {
		return repository.Service{}, err
	}

	if in.CategoryID != nil {
		if err := s.validateCategoryOwnership(ctx, providerID, *in.CategoryID); err != nil {
			return repository.Service{}, err
		}
	}

	return s.repo.UpdateService(ctx, repository.UpdateServiceParams{
		ID:             id,
		CategoryID:     in.CategoryID,
		ServiceName:    sanitize.TextPtr(in.ServiceName),
		BasePrice:      in.BasePrice,
		VATPercent:     in.VATPercent,
		DiscountAmount: in.DiscountAmount,
		Image:          in.Image,
	})
}

// DeleteService removes a service after the ownership guard passes.
func (s *Service) DeleteService(ctx context.Context, providerID, id uuid.UUID) error {
	svc, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownership.Authorize("catalog.deleteService", providerID, svc.ProviderID); err != nil {
		return err
	}

	return s.repo.DeleteService(ctx, id)
}

// GetServicesByIDs resolves service ids without tenant scoping. Used by the
// request aggregator through the service-resolver port.
func (s *Service) GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]repository.Service, error) {
	return s.repo.GetServicesByIDs(ctx, ids)
}

// validateCategoryOwnership checks that the referenced category exists and
// belongs to the acting provider. A foreign or missing category is reported
// as an invalid reference, not as forbidden, so the intake form can surface
// it as a field error.
func (s *Service) validateCategoryOwnership(ctx context.Context, providerID, categoryID uuid.UUID) error {
	category, err := s.repo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return apperr.Validation("Invalid category")
	}
	if category.ProviderID != providerID {
		return apperr.Validation("Invalid category")
	}
	return nil
}

func validateStatus(status string) error {
	if status != repository.StatusActive && status != repository.StatusInactive {
		return apperr.Validation("Status must be active or inactive")
	}
	return nil
}
