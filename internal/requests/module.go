// Package requests provides the request bounded context module: anonymous
// lead intake plus provider-facing aggregation and status management.
package requests

import (
	apphttp "salonhub_backend/internal/http"
	"salonhub_backend/internal/requests/handler"
	"salonhub_backend/internal/requests/repository"
	"salonhub_backend/internal/requests/service"
	"salonhub_backend/platform/events"
	"salonhub_backend/platform/logger"
	"salonhub_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the requests bounded context module implementing http.Module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
	service       *service.Service
}

// NewModule creates and initializes the requests module with all its
// dependencies. The resolver is an adapter over the catalog module, wired by
// the composition root.
func NewModule(pool *pgxpool.Pool, resolver service.ServiceResolver, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, resolver, bus, log)

	return &Module{
		handler:       handler.New(svc, val),
		publicHandler: handler.NewPublic(svc, val),
		service:       svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "requests"
}

// Service returns the requests service.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts request routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected)

	// Anonymous intake with the stricter rate limit applied to abuse-prone
	// endpoints.
	intake := ctx.Public.Group("")
	intake.Use(ctx.AuthRateLimiter.RateLimit())
	m.publicHandler.RegisterRoutes(intake)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
