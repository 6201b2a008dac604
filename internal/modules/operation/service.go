package operation

import (
	"context"
	"fmt"
	"time"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/events"
	"bwbackbone/internal/pkg/keylock"
)

type Service struct {
	operations OperationRepository
	staff      StaffReader
	locks      *keylock.KeyLock
	events     EventSink
	now        func() time.Time
}

func NewService(operations OperationRepository, staff StaffReader, locks *keylock.KeyLock, sink EventSink) *Service {
	return &Service{
		operations: operations,
		staff:      staff,
		locks:      locks,
		events:     sink,
		now:        time.Now,
	}
}

// NextEligible returns the lowest-sequence pending operation whose
// lower-sequence siblings are all complete, or nil when the part has no
// startable work.
func (s *Service) NextEligible(ctx context.Context, partID string) (*domain.Operation, error) {
	ops, err := s.operations.ListByPart(ctx, partID)
	if err != nil {
		return nil, err
	}
	return nextEligible(ops), nil
}

// Start moves an operation from pending to in_progress. The part's sequence
// is enforced: starting ahead of incomplete siblings is refused.
func (s *Service) Start(ctx context.Context, opID string, staffID string) (*domain.Operation, error) {
	unlock := s.locks.Lock("op:" + opID)
	defer unlock()

	op, err := s.operations.GetByID(ctx, opID)
	if err != nil {
		return nil, err
	}
	if op.Status != domain.OperationPending {
		return nil, invalidTransition(op.Status, domain.OperationInProgress)
	}

	siblings, err := s.operations.ListByPart(ctx, op.PartID)
	if err != nil {
		return nil, err
	}
	for _, sib := range siblings {
		if sib.Sequence < op.Sequence && sib.Status != domain.OperationComplete {
			return nil, fmt.Errorf("%w: operation %d blocked by incomplete operation %d",
				ErrSequenceViolation, op.Sequence, sib.Sequence)
		}
	}

	now := s.now().UTC()
	op.Status = domain.OperationInProgress
	op.StartedAt = &now
	if staffID != "" {
		if _, err := s.staff.GetByID(ctx, staffID); err != nil {
			return nil, err
		}
		op.AssignedTo = &staffID
	}
	if err := s.operations.Update(ctx, op); err != nil {
		return nil, err
	}
	s.publish(ctx, op)
	return op, nil
}

// Pause suspends an in-progress operation.
func (s *Service) Pause(ctx context.Context, opID string) (*domain.Operation, error) {
	return s.setStatus(ctx, opID, domain.OperationInProgress, domain.OperationPaused, nil)
}

// Resume restarts a paused operation.
func (s *Service) Resume(ctx context.Context, opID string) (*domain.Operation, error) {
	return s.setStatus(ctx, opID, domain.OperationPaused, domain.OperationInProgress, nil)
}

// Complete finishes an in-progress operation. actual_minutes is taken from
// the caller when supplied, otherwise derived from started_at. Complete is
// terminal.
func (s *Service) Complete(ctx context.Context, opID string, actualMinutes *int) (*domain.Operation, error) {
	return s.setStatus(ctx, opID, domain.OperationInProgress, domain.OperationComplete, func(op *domain.Operation) {
		now := s.now().UTC()
		op.CompletedAt = &now
		if actualMinutes != nil {
			op.ActualMinutes = actualMinutes
		} else if op.StartedAt != nil {
			minutes := int(now.Sub(*op.StartedAt).Minutes())
			op.ActualMinutes = &minutes
		}
	})
}

// Reassign changes the operator on any non-complete operation.
func (s *Service) Reassign(ctx context.Context, opID string, staffID string) (*domain.Operation, error) {
	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock("op:" + opID)
	defer unlock()

	op, err := s.operations.GetByID(ctx, opID)
	if err != nil {
		return nil, err
	}
	if op.Status == domain.OperationComplete {
		return nil, invalidTransition(op.Status, op.Status)
	}

	op.AssignedTo = &staffID
	if err := s.operations.Update(ctx, op); err != nil {
		return nil, err
	}
	s.publish(ctx, op)
	return op, nil
}

func (s *Service) setStatus(ctx context.Context, opID string, from, to domain.OperationStatus, mutate func(*domain.Operation)) (*domain.Operation, error) {
	unlock := s.locks.Lock("op:" + opID)
	defer unlock()

	op, err := s.operations.GetByID(ctx, opID)
	if err != nil {
		return nil, err
	}
	if op.Status != from {
		return nil, invalidTransition(op.Status, to)
	}

	op.Status = to
	if mutate != nil {
		mutate(op)
	}
	if err := s.operations.Update(ctx, op); err != nil {
		return nil, err
	}
	s.publish(ctx, op)
	return op, nil
}

func (s *Service) publish(ctx context.Context, op *domain.Operation) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, events.TopicOperationChanged, op)
}

// nextEligible assumes ops is ordered by sequence.
func nextEligible(ops []domain.Operation) *domain.Operation {
	for i := range ops {
		switch ops[i].Status {
		case domain.OperationComplete:
			continue
		case domain.OperationPending:
			return &ops[i]
		default:
			// in_progress or paused blocks everything after it
			return nil
		}
	}
	return nil
}
