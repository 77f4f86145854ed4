package transport

import (
	"time"

	"salonhub_backend/internal/providers/repository"
)

type RegisterRequest struct {
	FullName      string `json:"fullName" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Password      string `json:"password" validate:"required,min=8"`
	CompanyName   string `json:"companyName" validate:"required,min=2"`
	LicenseNumber string `json:"licenseNumber" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProviderResponse struct {
	ID            string    `json:"id"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CompanyName   string    `json:"companyName"`
	LicenseNumber string    `json:"licenseNumber"`
	Slug          string    `json:"slug"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AuthResponse struct {
	AccessToken string           `json:"accessToken"`
	Provider    ProviderResponse `json:"provider"`
}

// ToProviderResponse maps a provider record to its public DTO.
// The password hash never leaves the service layer.
func ToProviderResponse(p repository.Provider) ProviderResponse {
	return ProviderResponse{
		ID:            p.ID.String(),
		FullName:      p.FullName,
		Email:         p.Email,
		Phone:         p.Phone,
		CompanyName:   p.CompanyName,
		LicenseNumber: p.LicenseNumber,
		Slug:          p.Slug,
		CreatedAt:     p.CreatedAt,
	}
}
