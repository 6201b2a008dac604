package equipment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/pkg/response"
	"bwbackbone/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/equipment", h.Create)
	rg.GET("/equipment", h.List)
	rg.GET("/equipment/due", h.DueForService)
	rg.GET("/equipment/:id", h.Get)
	rg.POST("/equipment/:id/usage", h.LogUsage)
	rg.POST("/equipment/:id/service", h.RecordService)
	rg.POST("/equipment/:id/status", h.SetStatus)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeEquipmentError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"equipment": e})
}

func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeEquipmentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": view})
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), domain.EquipmentStatus(c.Query("status")))
	if err != nil {
		writeEquipmentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": list})
}

func (h *Handler) DueForService(c *gin.Context) {
	list, err := h.service.DueForService(c.Request.Context())
	if err != nil {
		writeEquipmentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": list})
}

func (h *Handler) LogUsage(c *gin.Context) {
	var req LogUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.LogUsage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeEquipmentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": view})
}

func (h *Handler) RecordService(c *gin.Context) {
	var req RecordServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.RecordService(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeEquipmentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": view})
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeEquipmentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": e})
}

func writeEquipmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrMeterRegression):
		response.Error(c, http.StatusConflict, "METER_REGRESSION", err.Error())
	case errors.Is(err, ErrNoMeter):
		response.Error(c, http.StatusBadRequest, "NO_METER", err.Error())
	case errors.Is(err, ErrRetired):
		response.Error(c, http.StatusConflict, "RETIRED", err.Error())
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
