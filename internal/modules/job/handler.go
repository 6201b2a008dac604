package job

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
	rg.POST("/jobs", h.CreateJob)
	rg.GET("/jobs", h.ListJobs)
	rg.GET("/jobs/:id", h.GetJob)
	rg.GET("/jobs/:id/qr", h.GetJobQR)

	rg.POST("/jobs/:id/approve", h.Approve)
	rg.POST("/jobs/:id/start", h.Start)
	rg.POST("/jobs/:id/qa", h.MoveToQA)
	rg.POST("/jobs/:id/complete", h.Complete)
	rg.POST("/jobs/:id/reopen", h.Reopen)
	rg.POST("/jobs/:id/actual-total", h.SetActualTotal)
	rg.POST("/jobs/:id/invoice", h.Invoice)

	rg.POST("/jobs/:id/parts", h.AddPart)
	rg.DELETE("/parts/:id", h.RemovePart)
}

func (h *Handler) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	j, err := h.service.CreateJob(c.Request.Context(), c.GetString("staff_id"), req)
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"job": j})
}

func (h *Handler) ListJobs(c *gin.Context) {
	f := repository.JobFilter{
		Status:     domain.JobStatus(c.Query("status")),
		CustomerID: c.Query("customer_id"),
		Priority:   domain.JobPriority(c.Query("priority")),
	}

	jobs, err := h.service.ListJobs(c.Request.Context(), f)
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"jobs": jobs})
}

func (h *Handler) GetJob(c *gin.Context) {
	j, err := h.service.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) GetJobQR(c *gin.Context) {
	payload, err := h.service.QRPayload(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payload": payload})
}

func (h *Handler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	j, err := h.service.Approve(c.Request.Context(), c.Param("id"), req.QuoteID)
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) Start(c *gin.Context) {
	j, err := h.service.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) MoveToQA(c *gin.Context) {
	j, err := h.service.MoveToQA(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) Complete(c *gin.Context) {
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	j, err := h.service.Complete(c.Request.Context(), c.Param("id"), req.TotalActual)
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) Reopen(c *gin.Context) {
	j, err := h.service.Reopen(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) SetActualTotal(c *gin.Context) {
	var req struct {
		TotalActual float64 `json:"total_actual" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	j, err := h.service.SetActualTotal(c.Request.Context(), c.Param("id"), req.TotalActual)
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) Invoice(c *gin.Context) {
	j, err := h.service.Invoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) AddPart(c *gin.Context) {
	var req PartInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.AddPart(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"part": p})
}

func (h *Handler) RemovePart(c *gin.Context) {
	if err := h.service.RemovePart(c.Request.Context(), c.Param("id")); err != nil {
		writeJobError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func writeJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
	case errors.Is(err, repository.ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Duplicate value")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job data")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, ErrPartLocked):
		response.Error(c, http.StatusConflict, "PART_LOCKED", err.Error())
	case errors.Is(err, ErrNumberExhausted):
		response.Error(c, http.StatusConflict, "NUMBER_EXHAUSTED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
