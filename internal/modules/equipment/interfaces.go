package equipment

import (
	"context"

	"bwbackbone/internal/domain"
)

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
}

type EventSink interface {
	Publish(ctx context.Context, topic string, payload any) error
}
