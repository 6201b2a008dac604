package domain

import "time"

type QCResult string

const (
	QCPass        QCResult = "pass"
	QCFail        QCResult = "fail"
	QCConditional QCResult = "conditional"
)

type QCSeverity string

const (
	SeverityMinor    QCSeverity = "minor"
	SeverityMajor    QCSeverity = "major"
	SeverityCritical QCSeverity = "critical"
)

// QCEvent is an immutable inspection record. Severity and defect types are
// required when the result is not a pass and must be empty when it is.
type QCEvent struct {
	ID               string      `json:"id" gorm:"primaryKey"`
	JobID            string      `json:"job_id" gorm:"index"`
	PartID           *string     `json:"part_id,omitempty"`
	OperationID      *string     `json:"operation_id,omitempty"`
	InspectorID      string      `json:"inspector_id"`
	Result           QCResult    `json:"result"`
	DefectTypes      []string    `json:"defect_types" gorm:"serializer:json"`
	Severity         *QCSeverity `json:"severity,omitempty"`
	PhotoURLs        []string    `json:"photo_urls" gorm:"serializer:json"`
	CorrectiveAction string      `json:"corrective_action,omitempty"`
	Notes            string      `json:"notes,omitempty" gorm:"type:text"`
	InspectedAt      time.Time   `json:"inspected_at" gorm:"index"`
}
