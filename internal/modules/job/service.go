package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/events"
	"bwbackbone/internal/pkg/keylock"
	"bwbackbone/internal/pkg/numbering"
	"bwbackbone/internal/pkg/qr"
	"bwbackbone/internal/repository"
)

// maxNumberAttempts bounds the regenerate-on-conflict loop for the random
// document number suffix.
const maxNumberAttempts = 5

type Service struct {
	jobs       JobRepository
	operations OperationRepository
	qc         QCReader
	customers  CustomerReader
	locks      *keylock.KeyLock
	events     EventSink
	now        func() time.Time
}

func NewService(
	jobs JobRepository,
	operations OperationRepository,
	qc QCReader,
	customers CustomerReader,
	locks *keylock.KeyLock,
	sink EventSink,
) *Service {
	return &Service{
		jobs:       jobs,
		operations: operations,
		qc:         qc,
		customers:  customers,
		locks:      locks,
		events:     sink,
		now:        time.Now,
	}
}

// CreateJob registers a new estimate with its parts and their operation
// sequences. The job number's random suffix is regenerated on insert conflict.
func (s *Service) CreateJob(ctx context.Context, actorID string, req CreateJobRequest) (*domain.Job, error) {
	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityStandard
	}
	switch priority {
	case domain.PriorityStandard, domain.PriorityRush, domain.PriorityHold:
	default:
		return nil, ErrValidation
	}
	for _, p := range req.Parts {
		if p.Quantity < 1 || p.FinishType == "" {
			return nil, ErrValidation
		}
	}

	j := &domain.Job{
		ID:          uuid.NewString(),
		CustomerID:  req.CustomerID,
		Status:      domain.JobEstimate,
		Description: req.Description,
		Priority:    priority,
		DueDate:     req.DueDate,
		TotalQuoted: req.TotalQuoted,
		CreatedBy:   actorID,
	}

	created := false
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		j.JobNumber = numbering.JobNumber(s.now())
		err := s.jobs.Create(ctx, j)
		if errors.Is(err, repository.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		created = true
		break
	}
	if !created {
		return nil, ErrNumberExhausted
	}

	for _, in := range req.Parts {
		if _, err := s.createPart(ctx, j.ID, in); err != nil {
			return nil, err
		}
	}

	return s.jobs.GetByID(ctx, j.ID)
}

func (s *Service) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *Service) ListJobs(ctx context.Context, f repository.JobFilter) ([]domain.Job, error) {
	return s.jobs.List(ctx, f)
}

// Approve moves estimate -> approved. A quote reference must be on file; one
// supplied here is recorded first.
func (s *Service) Approve(ctx context.Context, jobID, quoteID string) (*domain.Job, error) {
	unlock := s.locks.Lock("job:" + jobID)
	defer unlock()

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !canTransition(j.Status, domain.JobApproved) {
		return nil, invalidTransition(j.Status, domain.JobApproved, "")
	}
	if quoteID != "" {
		j.QuoteID = &quoteID
	}
	if j.QuoteID == nil || *j.QuoteID == "" {
		return nil, invalidTransition(j.Status, domain.JobApproved, "quote reference required")
	}

	from := j.Status
	j.Status = domain.JobApproved
	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, err
	}
	s.publishStatus(ctx, j, from)
	return j, nil
}

// Start moves approved -> in_progress once the job has work defined.
func (s *Service) Start(ctx context.Context, jobID string) (*domain.Job, error) {
	return s.transition(ctx, jobID, domain.JobInProgress, domain.JobApproved, func(j *domain.Job) error {
		n, err := s.operations.CountByJob(ctx, j.ID)
		if err != nil {
			return err
		}
		if n == 0 {
			return invalidTransition(j.Status, domain.JobInProgress, "no operations defined")
		}
		return nil
	})
}

// MoveToQA moves in_progress -> qa once every operation on every part is
// complete.
func (s *Service) MoveToQA(ctx context.Context, jobID string) (*domain.Job, error) {
	return s.transition(ctx, jobID, domain.JobQA, domain.JobInProgress, func(j *domain.Job) error {
		n, err := s.operations.CountIncompleteByJob(ctx, j.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return invalidTransition(j.Status, domain.JobQA, fmt.Sprintf("%d operations incomplete", n))
		}
		return nil
	})
}

// Complete moves qa -> complete when the most recent inspection passed. The
// actual total may be recorded at the same time.
func (s *Service) Complete(ctx context.Context, jobID string, totalActual *float64) (*domain.Job, error) {
	unlock := s.locks.Lock("job:" + jobID)
	defer unlock()

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !canTransition(j.Status, domain.JobComplete) {
		return nil, invalidTransition(j.Status, domain.JobComplete, "")
	}

	latest, err := s.qc.LatestForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if latest == nil || latest.Result != domain.QCPass {
		return nil, invalidTransition(j.Status, domain.JobComplete, "latest inspection is not a pass")
	}

	from := j.Status
	now := s.now().UTC()
	j.Status = domain.JobComplete
	j.CompletedAt = &now
	if totalActual != nil {
		j.TotalActual = totalActual
	}
	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, err
	}
	s.publishStatus(ctx, j, from)
	return j, nil
}

// Reopen is the single backward edge: qa -> in_progress after a failed
// inspection.
func (s *Service) Reopen(ctx context.Context, jobID string) (*domain.Job, error) {
	return s.transition(ctx, jobID, domain.JobInProgress, domain.JobQA, func(j *domain.Job) error {
		latest, err := s.qc.LatestForJob(ctx, j.ID)
		if err != nil {
			return err
		}
		if latest == nil || latest.Result != domain.QCFail {
			return invalidTransition(j.Status, domain.JobInProgress, "latest inspection is not a fail")
		}
		return nil
	})
}

// SetActualTotal records the final cost; permitted only once the job is
// complete.
func (s *Service) SetActualTotal(ctx context.Context, jobID string, amount float64) (*domain.Job, error) {
	if amount < 0 {
		return nil, ErrValidation
	}

	unlock := s.locks.Lock("job:" + jobID)
	defer unlock()

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != domain.JobComplete {
		return nil, invalidTransition(j.Status, j.Status, "actual total is set after completion")
	}
	j.TotalActual = &amount
	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Invoice moves complete -> invoiced, the terminal state, assigning an
// invoice number. Requires the actual total to be on file.
func (s *Service) Invoice(ctx context.Context, jobID string) (*domain.Job, error) {
	unlock := s.locks.Lock("job:" + jobID)
	defer unlock()

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !canTransition(j.Status, domain.JobInvoiced) {
		return nil, invalidTransition(j.Status, domain.JobInvoiced, "")
	}
	if j.TotalActual == nil {
		return nil, invalidTransition(j.Status, domain.JobInvoiced, "actual total not set")
	}

	from := j.Status
	inv := numbering.InvoiceNumber(s.now())
	j.Status = domain.JobInvoiced
	j.InvoiceNumber = &inv
	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, err
	}
	s.publishStatus(ctx, j, from)
	return j, nil
}

// AddPart attaches a part (and its operation sequence) to a job that is still
// open for work definition.
func (s *Service) AddPart(ctx context.Context, jobID string, in PartInput) (*domain.Part, error) {
	if in.Quantity < 1 || in.FinishType == "" {
		return nil, ErrValidation
	}

	unlock := s.locks.Lock("job:" + jobID)
	defer unlock()

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status == domain.JobComplete || isTerminal(j.Status) {
		return nil, invalidTransition(j.Status, j.Status, "job is closed for changes")
	}

	return s.createPart(ctx, jobID, in)
}

// RemovePart deletes a part and its operations; allowed only while the job is
// still an estimate.
func (s *Service) RemovePart(ctx context.Context, partID string) error {
	p, err := s.jobs.GetPart(ctx, partID)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock("job:" + p.JobID)
	defer unlock()

	j, err := s.jobs.GetByID(ctx, p.JobID)
	if err != nil {
		return err
	}
	if j.Status != domain.JobEstimate {
		return ErrPartLocked
	}

	return s.jobs.DeletePart(ctx, partID)
}

// QRPayload returns the traveler payload text for the job.
func (s *Service) QRPayload(ctx context.Context, jobID string) (string, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return "", err
	}
	return qr.Encode(qr.JobPayload(j.ID, j.JobNumber, s.now().UTC()))
}

func (s *Service) createPart(ctx context.Context, jobID string, in PartInput) (*domain.Part, error) {
	p := &domain.Part{
		ID:         uuid.NewString(),
		JobID:      jobID,
		PartNumber: in.PartNumber,
		PartName:   in.PartName,
		Quantity:   in.Quantity,
		Material:   in.Material,
		FinishType: in.FinishType,
		ColorID:    in.ColorID,
		Notes:      in.Notes,
	}
	if err := s.jobs.CreatePart(ctx, p); err != nil {
		return nil, err
	}

	// Sequences are assigned contiguously from 1 in the order given.
	for i, op := range in.Operations {
		o := &domain.Operation{
			ID:               uuid.NewString(),
			PartID:           p.ID,
			Sequence:         i + 1,
			OperationType:    op.OperationType,
			Status:           domain.OperationPending,
			EstimatedMinutes: op.EstimatedMinutes,
			IsHighRisk:       op.IsHighRisk,
			Notes:            op.Notes,
		}
		if err := s.operations.Create(ctx, o); err != nil {
			return nil, err
		}
		p.Operations = append(p.Operations, *o)
	}

	return p, nil
}

// transition re-reads the job under its lock, validates the edge and the
// guard, then commits the status write.
func (s *Service) transition(ctx context.Context, jobID string, to, expectFrom domain.JobStatus, guard func(*domain.Job) error) (*domain.Job, error) {
	unlock := s.locks.Lock("job:" + jobID)
	defer unlock()

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != expectFrom || !canTransition(j.Status, to) {
		return nil, invalidTransition(j.Status, to, "")
	}
	if guard != nil {
		if err := guard(j); err != nil {
			return nil, err
		}
	}

	from := j.Status
	if err := s.jobs.UpdateStatus(ctx, jobID, to, nil); err != nil {
		return nil, err
	}
	j.Status = to
	s.publishStatus(ctx, j, from)
	return j, nil
}

func (s *Service) publishStatus(ctx context.Context, j *domain.Job, from domain.JobStatus) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, events.TopicJobStatusChanged, StatusChange{
		JobID:     j.ID,
		JobNumber: j.JobNumber,
		From:      from,
		To:        j.Status,
	})
}
