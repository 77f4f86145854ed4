package handler

import (
	"net/http"
	"strconv"

	"salonhub_backend/internal/catalog/service"
	"salonhub_backend/internal/catalog/transport"
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

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the provider-facing catalog routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/categories", h.CreateCategory)
	rg.GET("/categories", h.ListCategories)
	rg.GET("/categories/:id", h.GetCategory)
	rg.PUT("/categories/:id", h.UpdateCategory)
	rg.DELETE("/categories/:id", h.DeleteCategory)

	rg.POST("/services", h.CreateService)
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:id", h.GetService)
	rg.PUT("/services/:id", h.UpdateService)
	rg.DELETE("/services/:id", h.DeleteService)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req transport.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	category, err := h.svc.CreateCategory(c.Request.Context(), id.ProviderID(), service.CategoryInput{
		Title:       &req.Title,
		Description: req.Description,
		Image:       req.Image,
		Status:      req.Status,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, transport.ToCategoryResponse(category))
}

func (h *Handler) ListCategories(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	categories, meta, err := h.svc.ListCategories(c.Request.Context(), id.ProviderID(), pageQuery(c))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.CategoryListResponse{
		Data: transport.ToCategoryResponses(categories),
		Meta: meta,
	})
}

func (h *Handler) GetCategory(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	categoryID, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.svc.GetCategory(c.Request.Context(), id.ProviderID(), categoryID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToCategoryResponse(category))
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	categoryID, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	category, err := h.svc.UpdateCategory(c.Request.Context(), id.ProviderID(), categoryID, service.CategoryInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Status:      req.Status,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToCategoryResponse(category))
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	categoryID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(c.Request.Context(), id.ProviderID(), categoryID); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"message": "Category deleted"})
}

func (h *Handler) CreateService(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var req transport.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	svc, err := h.svc.CreateService(c.Request.Context(), id.ProviderID(), service.ServiceInput{
		CategoryID:     &categoryID,
		ServiceName:    &req.ServiceName,
		BasePrice:      req.BasePrice,
		VATPercent:     req.VATPercent,
		DiscountAmount: req.DiscountAmount,
		Image:          req.Image,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, transport.ToServiceResponse(svc))
}

func (h *Handler) ListServices(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	var categoryID *uuid.UUID
	if raw := c.Query("categoryId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
			return
		}
		categoryID = &parsed
	}

	services, meta, err := h.svc.ListServices(c.Request.Context(), id.ProviderID(), pageQuery(c), categoryID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ServiceListResponse{
		Data: transport.ToServiceResponses(services),
		Meta: meta,
	})
}

func (h *Handler) GetService(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	serviceID, ok := parseID(c)
	if !ok {
		return
	}

	svc, err := h.svc.GetService(c.Request.Context(), id.ProviderID(), serviceID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToServiceResponse(svc))
}

func (h *Handler) UpdateService(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	serviceID, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil {
		parsed, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
			return
		}
		categoryID = &parsed
	}

	svc, err := h.svc.UpdateService(c.Request.Context(), id.ProviderID(), serviceID, service.ServiceInput{
		CategoryID:     categoryID,
		ServiceName:    req.ServiceName,
		BasePrice:      req.BasePrice,
		VATPercent:     req.VATPercent,
		DiscountAmount: req.DiscountAmount,
		Image:          req.Image,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToServiceResponse(svc))
}

func (h *Handler) DeleteService(c *gin.Context) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return
	}

	serviceID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteService(c.Request.Context(), id.ProviderID(), serviceID); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"message": "Service deleted"})
}

func pageQuery(c *gin.Context) service.PageQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return service.PageQuery{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}
