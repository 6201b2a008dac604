package timeclock

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

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
	rg.POST("/timeclock/clock-in", h.ClockIn)
	rg.POST("/timeclock/clock-out", h.ClockOut)
	rg.POST("/timeclock/break-start", h.StartBreak)
	rg.POST("/timeclock/break-end", h.EndBreak)
	rg.GET("/timeclock/active", h.CurrentlyClockedIn)
	rg.GET("/timeclock/timesheet/:staff_id", h.Timesheet)
}

// RegisterReviewRoutes mounts the manager-only punch review endpoints.
func (h *Handler) RegisterReviewRoutes(rg *gin.RouterGroup) {
	rg.GET("/timeclock/punches/pending", h.ListPending)
	rg.POST("/timeclock/punches/:id/approve", h.Approve)
	rg.POST("/timeclock/punches/:id/decline", h.Decline)
	rg.POST("/timeclock/punches/:id/edit", h.Edit)
}

func (h *Handler) ClockIn(c *gin.Context) {
	h.recordPunch(c, h.service.ClockIn)
}

func (h *Handler) ClockOut(c *gin.Context) {
	h.recordPunch(c, h.service.ClockOut)
}

func (h *Handler) StartBreak(c *gin.Context) {
	h.recordPunch(c, h.service.StartBreak)
}

func (h *Handler) EndBreak(c *gin.Context) {
	h.recordPunch(c, h.service.EndBreak)
}

func (h *Handler) recordPunch(c *gin.Context, fn func(ctx context.Context, staffID string, req PunchRequest) (*domain.TimePunch, error)) {
	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := fn(c.Request.Context(), c.GetString("staff_id"), req)
	if err != nil {
		writeTimeclockError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"punch": p})
}

func (h *Handler) CurrentlyClockedIn(c *gin.Context) {
	active, err := h.service.CurrentlyClockedIn(c.Request.Context())
	if err != nil {
		writeTimeclockError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"active": active})
}

func (h *Handler) Timesheet(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be YYYY-MM-DD")
		return
	}

	sheet, err := h.service.Timesheet(c.Request.Context(), c.Param("staff_id"), from, to)
	if err != nil {
		writeTimeclockError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timesheet": sheet})
}

func (h *Handler) ListPending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	punches, err := h.service.ListPending(c.Request.Context(), limit)
	if err != nil {
		writeTimeclockError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"punches": punches})
}

func (h *Handler) Approve(c *gin.Context) {
	p, err := h.service.Approve(c.Request.Context(), c.Param("id"), c.GetString("staff_id"))
	if err != nil {
		writeTimeclockError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"punch": p})
}

func (h *Handler) Decline(c *gin.Context) {
	p, err := h.service.Decline(c.Request.Context(), c.Param("id"), c.GetString("staff_id"))
	if err != nil {
		writeTimeclockError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"punch": p})
}

func (h *Handler) Edit(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Edit(c.Request.Context(), c.Param("id"), c.GetString("staff_id"), req)
	if err != nil {
		writeTimeclockError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"punch": p})
}

func writeTimeclockError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, ErrAlreadyClockedIn):
		response.Error(c, http.StatusConflict, "ALREADY_CLOCKED_IN", "Staff member is already clocked in")
	case errors.Is(err, ErrNotClockedIn):
		response.Error(c, http.StatusConflict, "NOT_CLOCKED_IN", "Staff member is not clocked in")
	case errors.Is(err, ErrBreakOpen):
		response.Error(c, http.StatusConflict, "BREAK_OPEN", "An open break must be ended first")
	case errors.Is(err, ErrNotOnBreak):
		response.Error(c, http.StatusConflict, "NOT_ON_BREAK", "Staff member is not on break")
	case errors.Is(err, ErrNegativeDuration):
		response.Error(c, http.StatusBadRequest, "NEGATIVE_DURATION", "Clock-out precedes clock-in")
	case errors.Is(err, ErrPunchImmutable):
		response.Error(c, http.StatusConflict, "PUNCH_IMMUTABLE", "Only pending punches can be reviewed")
	case errors.Is(err, ErrStaffInactive):
		response.Error(c, http.StatusForbidden, "STAFF_INACTIVE", "Staff member is not active")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
