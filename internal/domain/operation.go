package domain

import "time"

type OperationStatus string

const (
	OperationPending    OperationStatus = "pending"
	OperationInProgress OperationStatus = "in_progress"
	OperationPaused     OperationStatus = "paused"
	OperationComplete   OperationStatus = "complete"
)

type OperationType string

const (
	OpSandblast  OperationType = "sandblast"
	OpMask       OperationType = "mask"
	OpPowderCoat OperationType = "powder_coat"
	OpCure       OperationType = "cure"
	OpAssembly   OperationType = "assembly"
	OpQA         OperationType = "qa"
)

// Operation is a single processing step on a Part. Sequence values within a
// part are contiguous starting at 1; an operation may not start until every
// lower-sequence sibling is complete.
type Operation struct {
	ID               string          `json:"id" gorm:"primaryKey"`
	PartID           string          `json:"part_id" gorm:"index;uniqueIndex:idx_part_sequence"`
	Sequence         int             `json:"sequence" gorm:"uniqueIndex:idx_part_sequence"`
	OperationType    OperationType   `json:"operation_type"`
	Status           OperationStatus `json:"status"`
	AssignedTo       *string         `json:"assigned_to,omitempty"`
	EstimatedMinutes *int            `json:"estimated_minutes,omitempty"`
	ActualMinutes    *int            `json:"actual_minutes,omitempty"`
	IsHighRisk       bool            `json:"is_high_risk"`
	StartedAt        *time.Time      `json:"started_at,omitempty"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
	Notes            string          `json:"notes,omitempty" gorm:"type:text"`
}
