package repository

import (
	"context"

	"gorm.io/gorm"

	"bwbackbone/internal/domain"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	return translate(r.db.WithContext(ctx).Create(e).Error)
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *EquipmentRepository) List(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error) {
	q := r.db.WithContext(ctx).Order("equipment_name asc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []domain.Equipment
	err := q.Find(&out).Error
	return out, translate(err)
}

func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	return translate(r.db.WithContext(ctx).Save(e).Error)
}
