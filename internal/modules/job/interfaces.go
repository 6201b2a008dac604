package job

import (
	"context"
	"time"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/repository"
)

// JobRepository defines the persistence operations the lifecycle engine needs.
type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, f repository.JobFilter) ([]domain.Job, error)
	Update(ctx context.Context, j *domain.Job) error
	UpdateStatus(ctx context.Context, id string, status domain.JobStatus, completedAt *time.Time) error
	CreatePart(ctx context.Context, p *domain.Part) error
	GetPart(ctx context.Context, id string) (*domain.Part, error)
	ListParts(ctx context.Context, jobID string) ([]domain.Part, error)
	DeletePart(ctx context.Context, id string) error
}

// OperationRepository covers the queries the engine runs against operations.
type OperationRepository interface {
	Create(ctx context.Context, op *domain.Operation) error
	ListByPart(ctx context.Context, partID string) ([]domain.Operation, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
	CountIncompleteByJob(ctx context.Context, jobID string) (int64, error)
}

// QCReader exposes the single QC query the qa gate depends on.
type QCReader interface {
	LatestForJob(ctx context.Context, jobID string) (*domain.QCEvent, error)
}

// CustomerReader verifies job ownership references.
type CustomerReader interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

// EventSink receives job lifecycle events for the floor feed / broker.
type EventSink interface {
	Publish(ctx context.Context, topic string, payload any) error
}
