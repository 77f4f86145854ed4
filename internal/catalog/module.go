// Package catalog provides the catalog bounded context module: tenant-scoped
// categories and priced services plus the anonymous public catalog.
package catalog

import (
	"salonhub_backend/internal/catalog/handler"
	"salonhub_backend/internal/catalog/repository"
	"salonhub_backend/internal/catalog/service"
	apphttp "salonhub_backend/internal/http"
	"salonhub_backend/platform/logger"
	"salonhub_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
	service       *service.Service
}

// NewModule creates and initializes the catalog module with all its dependencies.
// The provider reader is an adapter over the providers module, wired by the
// composition root.
func NewModule(pool *pgxpool.Pool, providers service.ProviderReader, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, providers, log)

	return &Module{
		handler:       handler.New(svc, val),
		publicHandler: handler.NewPublic(svc),
		service:       svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the catalog service for use by adapters (e.g., the request
// aggregator's service resolver).
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected)
	m.publicHandler.RegisterRoutes(ctx.Public)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
