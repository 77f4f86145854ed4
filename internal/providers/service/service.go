// Package service implements provider registration, login, and profile reads.
package service

import (
	"context"
	"time"

	domainevents "salonhub_backend/internal/events"
	"salonhub_backend/internal/providers/password"
	"salonhub_backend/internal/providers/repository"
	"salonhub_backend/platform/apperr"
	"salonhub_backend/platform/config"
	"salonhub_backend/platform/events"
	"salonhub_backend/platform/logger"
	"salonhub_backend/platform/phone"
	"salonhub_backend/platform/sanitize"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenType = "access"

type Service struct {
	repo repository.ProviderRepository
	cfg  config.AuthServiceConfig
	bus  events.Bus
	log  *logger.Logger
}

func New(repo repository.ProviderRepository, cfg config.AuthServiceConfig, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, bus: bus, log: log}
}

// RegisterInput carries the fields for a new provider account.
type RegisterInput struct {
	FullName      string
	Email         string
	Phone         string
	Password      string
	CompanyName   string
	LicenseNumber string
}

// Register creates a provider account, derives its public slug from the
// company name, and returns the provider together with an access token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (repository.Provider, string, error) {
	email := sanitize.Email(in.Email)

	normalizedPhone, err := phone.Normalize(in.Phone)
	if err != nil {
		// Keep the raw value; phone format is not a registration blocker.
		normalizedPhone = in.Phone
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return repository.Provider{}, "", err
	}

	slug := DeriveSlug(in.CompanyName)
	if slug == "" {
		return repository.Provider{}, "", apperr.Validation("Company name is required")
	}

	provider, err := s.repo.CreateProvider(ctx, in.FullName, email, normalizedPhone, hash, in.CompanyName, in.LicenseNumber, slug)
	if err != nil {
		return repository.Provider{}, "", err
	}

	s.log.AuthEvent("register", provider.Email, true, "")
	s.bus.Publish(ctx, domainevents.NewProviderRegistered(provider.ID, provider.Email, provider.FullName, provider.CompanyName))

	token, err := s.signAccessToken(provider.ID)
	if err != nil {
		return repository.Provider{}, "", err
	}

	return provider, token, nil
}

// Login verifies credentials and returns the provider with a fresh access token.
func (s *Service) Login(ctx context.Context, email, plainPassword string) (repository.Provider, string, error) {
	provider, err := s.repo.GetByEmail(ctx, sanitize.Email(email))
	if err != nil {
		s.log.AuthEvent("login", email, false, "unknown email")
		return repository.Provider{}, "", apperr.Unauthorized("Invalid credentials")
	}

	if err := password.Compare(provider.PasswordHash, plainPassword); err != nil {
		s.log.AuthEvent("login", email, false, "bad password")
		return repository.Provider{}, "", apperr.Unauthorized("Invalid credentials")
	}

	token, err := s.signAccessToken(provider.ID)
	if err != nil {
		return repository.Provider{}, "", err
	}

	s.log.AuthEvent("login", provider.Email, true, "")
	return provider, token, nil
}

// GetProfile returns the provider record for the authenticated tenant.
func (s *Service) GetProfile(ctx context.Context, providerID uuid.UUID) (repository.Provider, error) {
	return s.repo.GetByID(ctx, providerID)
}

// GetByIDOrSlug resolves a public catalog key, which may be a provider UUID
// or a slug. Used by the public catalog through the provider-reader port.
func (s *Service) GetByIDOrSlug(ctx context.Context, key string) (repository.Provider, error) {
	if id, err := uuid.Parse(key); err == nil {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.GetBySlug(ctx, key)
}

func (s *Service) signAccessToken(providerID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub":  providerID.String(),
		"type": accessTokenType,
		"exp":  time.Now().Add(s.cfg.GetAccessTokenTTL()).Unix(),
		"iat":  time.Now().Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
