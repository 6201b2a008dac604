package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bwbackbone/internal/domain"
)

type QCRepository struct {
	db *gorm.DB
}

func NewQCRepository(db *gorm.DB) *QCRepository {
	return &QCRepository{db: db}
}

func (r *QCRepository) Create(ctx context.Context, e *domain.QCEvent) error {
	return translate(r.db.WithContext(ctx).Create(e).Error)
}

// LatestForJob returns the newest inspection for the job, or nil when the job
// has never been inspected. The lifecycle engine's qa gate reads this.
func (r *QCRepository) LatestForJob(ctx context.Context, jobID string) (*domain.QCEvent, error) {
	var e domain.QCEvent
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("inspected_at desc").
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *QCRepository) ListForJob(ctx context.Context, jobID string) ([]domain.QCEvent, error) {
	var out []domain.QCEvent
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("inspected_at desc").
		Find(&out).Error
	return out, translate(err)
}

// ResultCounts aggregates pass/fail/conditional totals for the job.
func (r *QCRepository) ResultCounts(ctx context.Context, jobID string) (map[domain.QCResult]int64, error) {
	type row struct {
		Result domain.QCResult
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&domain.QCEvent{}).
		Select("result, COUNT(1) AS n").
		Where("job_id = ?", jobID).
		Group("result").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	out := make(map[domain.QCResult]int64, len(rows))
	for _, r := range rows {
		out[r.Result] = r.N
	}
	return out, nil
}
