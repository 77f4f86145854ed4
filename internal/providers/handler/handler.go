package handler

import (
	"net/http"

	"salonhub_backend/internal/providers/service"
	"salonhub_backend/internal/providers/transport"
	"salonhub_backend/platform/httpkit"
	"salonhub_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
}

func (h *Handler) Register(c *gin.Context) {
	var req transport.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	provider, token, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Password:      req.Password,
		CompanyName:   req.CompanyName,
		LicenseNumber: req.LicenseNumber,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, transport.AuthResponse{
		AccessToken: token,
		Provider:    transport.ToProviderResponse(provider),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	provider, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.AuthResponse{
		AccessToken: token,
		Provider:    transport.ToProviderResponse(provider),
	})
}

// GetMe returns the authenticated provider's profile.
func (h *Handler) GetMe(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	provider, err := h.svc.GetProfile(c.Request.Context(), id.ProviderID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToProviderResponse(provider))
}
