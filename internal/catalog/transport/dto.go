package transport

import (
	"time"

	"salonhub_backend/internal/catalog/repository"
	"salonhub_backend/internal/catalog/service"
	"salonhub_backend/internal/shared/pricing"
)

type CreateCategoryRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateCategoryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type CreateServiceRequest struct {
	ServiceName    string   `json:"serviceName" validate:"required"`
	CategoryID     string   `json:"categoryId" validate:"required,uuid"`
	BasePrice      *float64 `json:"basePrice" validate:"required"`
	VATPercent     *float64 `json:"vatPercent"`
	DiscountAmount *float64 `json:"discountAmount"`
	Image          *string  `json:"image"`
}

type UpdateServiceRequest struct {
	ServiceName    *string  `json:"serviceName"`
	CategoryID     *string  `json:"categoryId" validate:"omitempty,uuid"`
	BasePrice      *float64 `json:"basePrice"`
	VATPercent     *float64 `json:"vatPercent"`
	DiscountAmount *float64 `json:"discountAmount"`
	Image          *string  `json:"image"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ServiceResponse struct {
	ID             string    `json:"id"`
	CategoryID     string    `json:"categoryId"`
	ServiceName    string    `json:"serviceName"`
	BasePrice      float64   `json:"basePrice"`
	VATPercent     float64   `json:"vatPercent"`
	DiscountAmount float64   `json:"discountAmount"`
	TotalPrice     float64   `json:"totalPrice"`
	Image          *string   `json:"image,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CategoryListResponse struct {
	Data []CategoryResponse `json:"data"`
	Meta service.PageMeta   `json:"meta"`
}

type ServiceListResponse struct {
	Data []ServiceResponse `json:"data"`
	Meta service.PageMeta  `json:"meta"`
}

type PublicProviderResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Slug        string `json:"slug"`
}

type PublicCategoryResponse struct {
	CategoryResponse
	Services []ServiceResponse `json:"services"`
}

type PublicCatalogResponse struct {
	Provider PublicProviderResponse   `json:"provider"`
	Catalog  []PublicCategoryResponse `json:"catalog"`
}

// ToCategoryResponse maps a category record to its DTO.
func ToCategoryResponse(c repository.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Image:       c.Image,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryResponses maps a slice of category records.
func ToCategoryResponses(categories []repository.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}

// ToServiceResponse maps a service record to its DTO, attaching the derived
// total so every surface shows the same number.
func ToServiceResponse(s repository.Service) ServiceResponse {
	return ServiceResponse{
		ID:             s.ID.String(),
		CategoryID:     s.CategoryID.String(),
		ServiceName:    s.ServiceName,
		BasePrice:      s.BasePrice,
		VATPercent:     s.VATPercent,
		DiscountAmount: s.DiscountAmount,
		TotalPrice:     pricing.Total(s.BasePrice, s.VATPercent, s.DiscountAmount),
		Image:          s.Image,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ToServiceResponses maps a slice of service records.
func ToServiceResponses(services []repository.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ToServiceResponse(s))
	}
	return out
}

// ToPublicCatalogResponse maps the assembled catalog view.
func ToPublicCatalogResponse(catalog service.PublicCatalog) PublicCatalogResponse {
	categories := make([]PublicCategoryResponse, 0, len(catalog.Catalog))
	for _, entry := range catalog.Catalog {
		services := make([]ServiceResponse, 0, len(entry.Services))
		for _, priced := range entry.Services {
			resp := ToServiceResponse(priced.Service)
			resp.TotalPrice = priced.Total
			services = append(services, resp)
		}
		categories = append(categories, PublicCategoryResponse{
			CategoryResponse: ToCategoryResponse(entry.Category),
			Services:         services,
		})
	}

	return PublicCatalogResponse{
		Provider: PublicProviderResponse{
			ID:          catalog.Provider.ID.String(),
			FullName:    catalog.Provider.FullName,
			CompanyName: catalog.Provider.CompanyName,
			Email:       catalog.Provider.Email,
			Phone:       catalog.Provider.Phone,
			Slug:        catalog.Provider.Slug,
		},
		Catalog: categories,
	}
}
