package domain

import "time"

type JobStatus string

const (
	JobEstimate   JobStatus = "estimate"
	JobApproved   JobStatus = "approved"
	JobInProgress JobStatus = "in_progress"
	JobQA         JobStatus = "qa"
	JobComplete   JobStatus = "complete"
	JobInvoiced   JobStatus = "invoiced"
)

type JobPriority string

const (
	PriorityStandard JobPriority = "standard"
	PriorityRush     JobPriority = "rush"
	PriorityHold     JobPriority = "hold"
)

type Job struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	JobNumber     string      `json:"job_number" gorm:"uniqueIndex"`
	CustomerID    string      `json:"customer_id" validate:"required"`
	Status        JobStatus   `json:"status"`
	QuoteID       *string     `json:"quote_id,omitempty"`
	Description   string      `json:"description,omitempty" gorm:"type:text"`
	Priority      JobPriority `json:"priority"`
	DueDate       *time.Time  `json:"due_date,omitempty"`
	DriveFolderID *string     `json:"drive_folder_id,omitempty"`
	TotalQuoted   *float64    `json:"total_quoted,omitempty"`
	TotalActual   *float64    `json:"total_actual,omitempty"`
	InvoiceNumber *string     `json:"invoice_number,omitempty"`
	CreatedBy     string      `json:"created_by"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Parts    []Part    `json:"parts,omitempty" gorm:"foreignKey:JobID"`
}

// Part is a physical item within a Job. A Job exclusively owns its Parts.
type Part struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	JobID      string    `json:"job_id" gorm:"index"`
	PartNumber string    `json:"part_number,omitempty"`
	PartName   string    `json:"part_name,omitempty"`
	Quantity   int       `json:"quantity" validate:"required,gte=1"`
	Material   string    `json:"material,omitempty"`
	FinishType string    `json:"finish_type" validate:"required"`
	ColorID    *string   `json:"color_id,omitempty"`
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`

	Operations []Operation `json:"operations,omitempty" gorm:"foreignKey:PartID"`
}
