package operation

import (
	"context"

	"bwbackbone/internal/domain"
)

// OperationRepository defines the persistence operations the sequencer needs.
type OperationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Operation, error)
	ListByPart(ctx context.Context, partID string) ([]domain.Operation, error)
	Update(ctx context.Context, op *domain.Operation) error
}

// StaffReader validates assignment targets.
type StaffReader interface {
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
}

// EventSink receives operation progress events for the floor feed.
type EventSink interface {
	Publish(ctx context.Context, topic string, payload any) error
}
