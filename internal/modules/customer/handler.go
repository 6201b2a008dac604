package customer

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.POST("/customers", h.Create)
	rg.GET("/customers", h.List)
	rg.GET("/customers/:id", h.Get)
	rg.PATCH("/customers/:id", h.Update)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cust, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeCustomerError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"customer": cust})
}

func (h *Handler) Get(c *gin.Context) {
	cust, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeCustomerError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customer": cust})
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	customers, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		writeCustomerError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customers": customers})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cust, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeCustomerError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customer": cust})
}

func writeCustomerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
