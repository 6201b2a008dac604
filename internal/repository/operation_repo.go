package repository

import (
	"context"

	"gorm.io/gorm"

	"bwbackbone/internal/domain"
)

type OperationRepository struct {
	db *gorm.DB
}

func NewOperationRepository(db *gorm.DB) *OperationRepository {
	return &OperationRepository{db: db}
}

func (r *OperationRepository) Create(ctx context.Context, op *domain.Operation) error {
	return translate(r.db.WithContext(ctx).Create(op).Error)
}

func (r *OperationRepository) GetByID(ctx context.Context, id string) (*domain.Operation, error) {
	var op domain.Operation
	if err := r.db.WithContext(ctx).First(&op, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &op, nil
}

// ListByPart returns a part's operations in sequence order.
func (r *OperationRepository) ListByPart(ctx context.Context, partID string) ([]domain.Operation, error) {
	var out []domain.Operation
	err := r.db.WithContext(ctx).
		Where("part_id = ?", partID).
		Order("sequence asc").
		Find(&out).Error
	return out, translate(err)
}

func (r *OperationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Operation, error) {
	var out []domain.Operation
	err := r.db.WithContext(ctx).
		Joins("JOIN parts ON parts.id = operations.part_id").
		Where("parts.job_id = ?", jobID).
		Order("parts.created_at asc, operations.sequence asc").
		Find(&out).Error
	return out, translate(err)
}

// CountIncompleteByJob is the qa-gate query: a job may enter qa only when
// this returns zero.
func (r *OperationRepository) CountIncompleteByJob(ctx context.Context, jobID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Operation{}).
		Joins("JOIN parts ON parts.id = operations.part_id").
		Where("parts.job_id = ? AND operations.status <> ?", jobID, domain.OperationComplete).
		Count(&n).Error
	return n, translate(err)
}

func (r *OperationRepository) CountByJob(ctx context.Context, jobID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Operation{}).
		Joins("JOIN parts ON parts.id = operations.part_id").
		Where("parts.job_id = ?", jobID).
		Count(&n).Error
	return n, translate(err)
}

func (r *OperationRepository) Update(ctx context.Context, op *domain.Operation) error {
	return translate(r.db.WithContext(ctx).Save(op).Error)
}
