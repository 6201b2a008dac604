package qc

import "bwbackbone/internal/domain"

type RecordInspectionRequest struct {
	JobID            string             `json:"job_id" binding:"required"`
	PartID           *string            `json:"part_id"`
	OperationID      *string            `json:"operation_id"`
	Result           domain.QCResult    `json:"result" binding:"required"`
	DefectTypes      []string           `json:"defect_types"`
	Severity         *domain.QCSeverity `json:"severity"`
	PhotoURLs        []string           `json:"photo_urls"`
	CorrectiveAction string             `json:"corrective_action"`
	Notes            string             `json:"notes"`
}

type JobSummary struct {
	JobID        string                    `json:"job_id"`
	Latest       *domain.QCEvent           `json:"latest"`
	ResultCounts map[domain.QCResult]int64 `json:"result_counts"`
}
