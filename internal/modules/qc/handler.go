package qc

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
	rg.POST("/qc/inspections", h.RecordInspection)
	rg.GET("/jobs/:id/inspections", h.ListForJob)
	rg.GET("/jobs/:id/qc-summary", h.JobSummary)
}

func (h *Handler) RecordInspection(c *gin.Context) {
	var req RecordInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.RecordInspection(c.Request.Context(), c.GetString("staff_id"), req)
	if err != nil {
		writeQCError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"inspection": e})
}

func (h *Handler) ListForJob(c *gin.Context) {
	inspections, err := h.service.ListForJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeQCError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"inspections": inspections})
}

func (h *Handler) JobSummary(c *gin.Context) {
	summary, err := h.service.JobSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeQCError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}

func writeQCError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
	case errors.Is(err, ErrMissingSeverity):
		response.Error(c, http.StatusBadRequest, "MISSING_SEVERITY", err.Error())
	case errors.Is(err, ErrMissingDefects):
		response.Error(c, http.StatusBadRequest, "MISSING_DEFECTS", err.Error())
	case errors.Is(err, ErrPassWithDefects):
		response.Error(c, http.StatusBadRequest, "PASS_WITH_DEFECTS", err.Error())
	case errors.Is(err, ErrInvalidResult):
		response.Error(c, http.StatusBadRequest, "INVALID_RESULT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
