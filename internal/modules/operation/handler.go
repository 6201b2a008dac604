package operation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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
	rg.GET("/parts/:id/next-operation", h.NextEligible)
	rg.POST("/operations/:id/start", h.Start)
	rg.POST("/operations/:id/pause", h.Pause)
	rg.POST("/operations/:id/resume", h.Resume)
	rg.POST("/operations/:id/complete", h.Complete)
	rg.POST("/operations/:id/reassign", h.Reassign)
}

func (h *Handler) NextEligible(c *gin.Context) {
	op, err := h.service.NextEligible(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeOperationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"operation": op})
}

func (h *Handler) Start(c *gin.Context) {
	var req struct {
		AssignedTo string `json:"assigned_to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	staffID := req.AssignedTo
	if staffID == "" {
		staffID = c.GetString("staff_id")
	}

	op, err := h.service.Start(c.Request.Context(), c.Param("id"), staffID)
	if err != nil {
		writeOperationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"operation": op})
}

func (h *Handler) Pause(c *gin.Context) {
	op, err := h.service.Pause(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeOperationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"operation": op})
}

func (h *Handler) Resume(c *gin.Context) {
	op, err := h.service.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeOperationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"operation": op})
}

func (h *Handler) Complete(c *gin.Context) {
	var req struct {
		ActualMinutes *int `json:"actual_minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	op, err := h.service.Complete(c.Request.Context(), c.Param("id"), req.ActualMinutes)
	if err != nil {
		writeOperationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"operation": op})
}

func (h *Handler) Reassign(c *gin.Context) {
	var req struct {
		AssignedTo string `json:"assigned_to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	op, err := h.service.Reassign(c.Request.Context(), c.Param("id"), req.AssignedTo)
	if err != nil {
		writeOperationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"operation": op})
}

func writeOperationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Operation not found")
	case errors.Is(err, ErrSequenceViolation):
		response.Error(c, http.StatusConflict, "SEQUENCE_VIOLATION", err.Error())
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
