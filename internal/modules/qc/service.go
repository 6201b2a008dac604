package qc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/events"
)

type Service struct {
	inspections QCRepository
	jobs        JobReader
	events      EventSink
	now         func() time.Time
}

func NewService(inspections QCRepository, jobs JobReader, sink EventSink) *Service {
	return &Service{
		inspections: inspections,
		jobs:        jobs,
		events:      sink,
		now:         time.Now,
	}
}

// RecordInspection appends an immutable QC event. A pass carries no severity
// or defects; anything else must name both. inspected_at is always server
// time, never caller-supplied.
func (s *Service) RecordInspection(ctx context.Context, inspectorID string, req RecordInspectionRequest) (*domain.QCEvent, error) {
	switch req.Result {
	case domain.QCPass, domain.QCFail, domain.QCConditional:
	default:
		return nil, ErrInvalidResult
	}

	if req.Result == domain.QCPass {
		if req.Severity != nil || len(req.DefectTypes) > 0 {
			return nil, ErrPassWithDefects
		}
	} else {
		if req.Severity == nil {
			return nil, ErrMissingSeverity
		}
		if len(req.DefectTypes) == 0 {
			return nil, ErrMissingDefects
		}
	}

	if _, err := s.jobs.GetByID(ctx, req.JobID); err != nil {
		return nil, err
	}

	e := &domain.QCEvent{
		ID:               uuid.NewString(),
		JobID:            req.JobID,
		PartID:           req.PartID,
		OperationID:      req.OperationID,
		InspectorID:      inspectorID,
		Result:           req.Result,
		DefectTypes:      req.DefectTypes,
		Severity:         req.Severity,
		PhotoURLs:        req.PhotoURLs,
		CorrectiveAction: req.CorrectiveAction,
		Notes:            req.Notes,
		InspectedAt:      s.now().UTC(),
	}
	if err := s.inspections.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.Publish(ctx, events.TopicInspectionRecorded, e)
	}
	return e, nil
}

func (s *Service) ListForJob(ctx context.Context, jobID string) ([]domain.QCEvent, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.inspections.ListForJob(ctx, jobID)
}

// JobSummary pairs the gate-deciding latest inspection with result totals.
func (s *Service) JobSummary(ctx context.Context, jobID string) (*JobSummary, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	latest, err := s.inspections.LatestForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	counts, err := s.inspections.ResultCounts(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &JobSummary{JobID: jobID, Latest: latest, ResultCounts: counts}, nil
}
