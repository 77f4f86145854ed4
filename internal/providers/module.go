// Package providers provides the provider (tenant) bounded context module:
// registration, login, and profile.
package providers

import (
	apphttp "salonhub_backend/internal/http"
	"salonhub_backend/internal/providers/handler"
	"salonhub_backend/internal/providers/repository"
	"salonhub_backend/internal/providers/service"
	"salonhub_backend/platform/config"
	"salonhub_backend/platform/events"
	"salonhub_backend/platform/logger"
	"salonhub_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the providers bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the providers module with all its dependencies.
func NewModule(pool *pgxpool.Pool, cfg config.AuthServiceConfig, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, bus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "providers"
}

// Service returns the provider service for use by adapters.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts provider routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public auth routes with stricter rate limiting
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)

	// Protected profile route
	ctx.Protected.GET("/providers/me", m.handler.GetMe)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
