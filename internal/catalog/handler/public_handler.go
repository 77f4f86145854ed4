package handler

import (
	"salonhub_backend/internal/catalog/service"
	"salonhub_backend/internal/catalog/transport"
	"salonhub_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the anonymous catalog endpoints.
type PublicHandler struct {
	svc *service.Service
}

func NewPublic(svc *service.Service) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// RegisterRoutes mounts the public catalog routes.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/:providerKey", h.GetCatalog)
}

// GetCatalog returns the assembled public catalog for a provider addressed
// by UUID or slug.
func (h *PublicHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.svc.GetPublicCatalog(c.Request.Context(), c.Param("providerKey"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToPublicCatalogResponse(catalog))
}
