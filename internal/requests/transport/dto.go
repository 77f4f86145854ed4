package transport

import (
	"time"

	"salonhub_backend/internal/requests/repository"
	"salonhub_backend/internal/requests/service"
)

type SubmitRequestRequest struct {
	ProviderID    string   `json:"providerId" validate:"required,uuid"`
	ServiceIDs    []string `json:"serviceIds" validate:"omitempty,dive,uuid"`
	CustomerName  string   `json:"customerName" validate:"required"`
	CustomerPhone string   `json:"customerPhone" validate:"required"`
	CustomerNote  *string  `json:"customerNote"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed cancelled"`
}

type RequestResponse struct {
	ID            string    `json:"id"`
	ProviderID    string    `json:"providerId"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerNote  *string   `json:"customerNote,omitempty"`
	ServiceIDs    []string  `json:"serviceIds"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ResolvedServiceResponse struct {
	ID             string  `json:"id"`
	CategoryID     string  `json:"categoryId"`
	ServiceName    string  `json:"serviceName"`
	BasePrice      float64 `json:"basePrice"`
	VATPercent     float64 `json:"vatPercent"`
	DiscountAmount float64 `json:"discountAmount"`
	TotalPrice     float64 `json:"totalPrice"`
	Image          *string `json:"image,omitempty"`
}

type RequestWithTotalsResponse struct {
	RequestResponse
	Services []ResolvedServiceResponse `json:"services"`
	Total    float64                   `json:"total"`
}

// ToRequestResponse maps a request record to its DTO.
func ToRequestResponse(r repository.Request) RequestResponse {
	serviceIDs := make([]string, 0, len(r.ServiceIDs))
	for _, id := range r.ServiceIDs {
		serviceIDs = append(serviceIDs, id.String())
	}

	return RequestResponse{
		ID:            r.ID.String(),
		ProviderID:    r.ProviderID.String(),
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerNote:  r.CustomerNote,
		ServiceIDs:    serviceIDs,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

// ToRequestWithTotalsResponse maps an aggregated request.
func ToRequestWithTotalsResponse(r service.RequestWithTotals) RequestWithTotalsResponse {
	services := make([]ResolvedServiceResponse, 0, len(r.Services))
	for _, priced := range r.Services {
		services = append(services, ResolvedServiceResponse{
			ID:             priced.ID.String(),
			CategoryID:     priced.CategoryID.String(),
			ServiceName:    priced.ServiceName,
			BasePrice:      priced.BasePrice,
			VATPercent:     priced.VATPercent,
			DiscountAmount: priced.DiscountAmount,
			TotalPrice:     priced.Total,
			Image:          priced.Image,
		})
	}

	return RequestWithTotalsResponse{
		RequestResponse: ToRequestResponse(r.Request),
		Services:        services,
		Total:           r.Total,
	}
}

// ToRequestWithTotalsResponses maps a slice of aggregated requests.
func ToRequestWithTotalsResponses(items []service.RequestWithTotals) []RequestWithTotalsResponse {
	out := make([]RequestWithTotalsResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToRequestWithTotalsResponse(item))
	}
	return out
}
