package handler

import (
	"net/http"

	"salonhub_backend/internal/requests/service"
	"salonhub_backend/internal/requests/transport"
	"salonhub_backend/platform/httpkit"
	"salonhub_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid id"
)

// Handler serves the provider-facing request endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the provider-facing request routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/requests", h.ListRequests)
	rg.PATCH("/requests/:id/status", h.UpdateStatus)
}

// ListRequests returns the provider's requests with resolved services and
// computed totals, newest first.
func (h *Handler) ListRequests(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	items, err := h.svc.ListWithTotals(c.Request.Context(), id.ProviderID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToRequestWithTotalsResponses(items))
}

// UpdateStatus moves one of the provider's requests to a new status.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	updated, err := h.svc.UpdateStatus(c.Request.Context(), requestID, id.ProviderID(), req.Status)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToRequestResponse(updated))
}
