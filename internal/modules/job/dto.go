package job

import (
	"time"

	"bwbackbone/internal/domain"
)

type OperationInput struct {
	OperationType    domain.OperationType `json:"operation_type" binding:"required"`
	EstimatedMinutes *int                 `json:"estimated_minutes"`
	IsHighRisk       bool                 `json:"is_high_risk"`
	Notes            string               `json:"notes"`
}

type PartInput struct {
	PartNumber string           `json:"part_number"`
	PartName   string           `json:"part_name"`
	Quantity   int              `json:"quantity" binding:"required,gte=1"`
	Material   string           `json:"material"`
	FinishType string           `json:"finish_type" binding:"required"`
	ColorID    *string          `json:"color_id"`
	Notes      string           `json:"notes"`
	Operations []OperationInput `json:"operations"`
}

type CreateJobRequest struct {
	CustomerID  string             `json:"customer_id" binding:"required"`
	Description string             `json:"description"`
	Priority    domain.JobPriority `json:"priority"`
	DueDate     *time.Time         `json:"due_date"`
	TotalQuoted *float64           `json:"total_quoted"`
	Parts       []PartInput        `json:"parts"`
}

type ApproveRequest struct {
	QuoteID string `json:"quote_id"`
}

type CompleteRequest struct {
	TotalActual *float64 `json:"total_actual"`
}

type StatusChange struct {
	JobID     string           `json:"job_id"`
	JobNumber string           `json:"job_number"`
	From      domain.JobStatus `json:"from"`
	To        domain.JobStatus `json:"to"`
}
