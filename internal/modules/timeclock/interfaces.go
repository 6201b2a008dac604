package timeclock

import (
	"context"
	"time"

	"bwbackbone/internal/domain"
)

type TimePunchRepository interface {
	Create(ctx context.Context, p *domain.TimePunch) error
	GetByID(ctx context.Context, id string) (*domain.TimePunch, error)
	LastForStaff(ctx context.Context, staffID string) (*domain.TimePunch, error)
	ListForStaff(ctx context.Context, staffID string, from, to time.Time) ([]domain.TimePunch, error)
	LatestPerStaff(ctx context.Context) ([]domain.TimePunch, error)
	ListPending(ctx context.Context, limit int) ([]domain.TimePunch, error)
	Update(ctx context.Context, p *domain.TimePunch) error
}

type StaffReader interface {
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
}

type EventSink interface {
	Publish(ctx context.Context, topic string, payload any) error
}
