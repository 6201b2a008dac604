package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"bwbackbone/internal/domain"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// JobFilter narrows List results; zero-valued fields are ignored.
type JobFilter struct {
	Status     domain.JobStatus
	CustomerID string
	Priority   domain.JobPriority
	Limit      int
	Offset     int
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	return translate(r.db.WithContext(ctx).Create(j).Error)
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	var j domain.Job
	err := r.db.WithContext(ctx).
		Preload("Parts", func(db *gorm.DB) *gorm.DB { return db.Order("parts.created_at asc") }).
		Preload("Parts.Operations", func(db *gorm.DB) *gorm.DB { return db.Order("operations.sequence asc") }).
		First(&j, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &j, nil
}

func (r *JobRepository) GetByNumber(ctx context.Context, jobNumber string) (*domain.Job, error) {
	var j domain.Job
	if err := r.db.WithContext(ctx).First(&j, "job_number = ?", jobNumber).Error; err != nil {
		return nil, translate(err)
	}
	return &j, nil
}

func (r *JobRepository) List(ctx context.Context, f JobFilter) ([]domain.Job, error) {
	q := r.db.WithContext(ctx).Order("created_at desc")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CustomerID != "" {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	var out []domain.Job
	err := q.Limit(limit).Offset(f.Offset).Find(&out).Error
	return out, translate(err)
}

func (r *JobRepository) Update(ctx context.Context, j *domain.Job) error {
	return translate(r.db.WithContext(ctx).Save(j).Error)
}

// UpdateStatus writes only the lifecycle fields so concurrent edits to other
// columns are not clobbered.
func (r *JobRepository) UpdateStatus(ctx context.Context, id string, status domain.JobStatus, completedAt *time.Time) error {
	updates := map[string]any{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if completedAt != nil {
		updates["completed_at"] = completedAt
	}
	tx := r.db.WithContext(ctx).Model(&domain.Job{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *JobRepository) CreatePart(ctx context.Context, p *domain.Part) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *JobRepository) GetPart(ctx context.Context, id string) (*domain.Part, error) {
	var p domain.Part
	err := r.db.WithContext(ctx).
		Preload("Operations", func(db *gorm.DB) *gorm.DB { return db.Order("operations.sequence asc") }).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *JobRepository) ListParts(ctx context.Context, jobID string) ([]domain.Part, error) {
	var out []domain.Part
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at asc").
		Find(&out).Error
	return out, translate(err)
}

func (r *JobRepository) DeletePart(ctx context.Context, id string) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("part_id = ?", id).Delete(&domain.Operation{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Part{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}))
}
