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

// PublicHandler serves the anonymous intake endpoint.
type PublicHandler struct {
	svc *service.Service
	val *validator.Validator
}

func NewPublic(svc *service.Service, val *validator.Validator) *PublicHandler {
	return &PublicHandler{svc: svc, val: val}
}

// RegisterRoutes mounts the public intake route.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/requests", h.SubmitRequest)
}

// SubmitRequest captures a customer's service selection for a provider.
func (h *PublicHandler) SubmitRequest(c *gin.Context) {
	var req transport.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	providerID, err := uuid.Parse(req.ProviderID)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	serviceIDs := make([]uuid.UUID, 0, len(req.ServiceIDs))
	for _, raw := range req.ServiceIDs {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
			return
		}
		serviceIDs = append(serviceIDs, parsed)
	}

	created, err := h.svc.Submit(c.Request.Context(), service.SubmitInput{
		ProviderID:    providerID,
		ServiceIDs:    serviceIDs,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerNote:  req.CustomerNote,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, transport.ToRequestResponse(created))
}
