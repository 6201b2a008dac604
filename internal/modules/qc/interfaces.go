package qc

import (
	"context"

	"bwbackbone/internal/domain"
)

type QCRepository interface {
	Create(ctx context.Context, e *domain.QCEvent) error
	LatestForJob(ctx context.Context, jobID string) (*domain.QCEvent, error)
	ListForJob(ctx context.Context, jobID string) ([]domain.QCEvent, error)
	ResultCounts(ctx context.Context, jobID string) (map[domain.QCResult]int64, error)
}

type JobReader interface {
	GetByID(ctx context.Context, id string) (*domain.Job, error)
}

type EventSink interface {
	Publish(ctx context.Context, topic string, payload any) error
}
