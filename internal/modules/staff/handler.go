package staff

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
	rg.POST("/staff", h.Create)
	rg.GET("/staff", h.List)
	rg.GET("/staff/:id", h.Get)
	rg.PATCH("/staff/:id", h.Update)
	rg.POST("/staff/:id/deactivate", h.Deactivate)
	rg.POST("/staff/:id/reactivate", h.Reactivate)
	rg.GET("/staff/:id/badge", h.Badge)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	member, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeStaffError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"staff": member})
}

func (h *Handler) Get(c *gin.Context) {
	member, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStaffError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"staff": member})
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), domain.StaffStatus(c.Query("status")))
	if err != nil {
		writeStaffError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"staff": list})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	member, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeStaffError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"staff": member})
}

func (h *Handler) Deactivate(c *gin.Context) {
	member, err := h.service.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStaffError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"staff": member})
}

func (h *Handler) Reactivate(c *gin.Context) {
	member, err := h.service.Reactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStaffError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"staff": member})
}

func (h *Handler) Badge(c *gin.Context) {
	payload, err := h.service.BadgePayload(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStaffError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payload": payload})
}

func writeStaffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Staff member not found")
	case errors.Is(err, repository.ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Employee id is already taken")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrWeakPin):
		response.Error(c, http.StatusBadRequest, "WEAK_PIN", err.Error())
	case errors.Is(err, ErrInactive):
		response.Error(c, http.StatusConflict, "STAFF_INACTIVE", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
