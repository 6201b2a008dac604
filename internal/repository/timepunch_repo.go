package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"bwbackbone/internal/domain"
)

type TimePunchRepository struct {
	db *gorm.DB
}

func NewTimePunchRepository(db *gorm.DB) *TimePunchRepository {
	return &TimePunchRepository{db: db}
}

func (r *TimePunchRepository) Create(ctx context.Context, p *domain.TimePunch) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *TimePunchRepository) GetByID(ctx context.Context, id string) (*domain.TimePunch, error) {
	var p domain.TimePunch
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// LastForStaff returns the most-recent punch by timestamp, or nil when the
// staff member has never punched.
func (r *TimePunchRepository) LastForStaff(ctx context.Context, staffID string) (*domain.TimePunch, error) {
	var p domain.TimePunch
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("timestamp desc").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *TimePunchRepository) ListForStaff(ctx context.Context, staffID string, from, to time.Time) ([]domain.TimePunch, error) {
	var out []domain.TimePunch
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND timestamp >= ? AND timestamp < ?", staffID, from, to).
		Order("timestamp asc").
		Find(&out).Error
	return out, translate(err)
}

// LatestPerStaff returns each staff member's newest punch; a clock_in row
// here means that person is currently on the clock.
func (r *TimePunchRepository) LatestPerStaff(ctx context.Context) ([]domain.TimePunch, error) {
	q := `
SELECT tp.*
FROM time_punches tp
JOIN (
    SELECT staff_id, MAX(timestamp) AS latest
    FROM time_punches
    GROUP BY staff_id
) last ON last.staff_id = tp.staff_id AND last.latest = tp.timestamp`

	var out []domain.TimePunch
	err := r.db.WithContext(ctx).Raw(q).Scan(&out).Error
	return out, translate(err)
}

func (r *TimePunchRepository) ListPending(ctx context.Context, limit int) ([]domain.TimePunch, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []domain.TimePunch
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.PunchPending).
		Order("timestamp asc").
		Limit(limit).
		Find(&out).Error
	return out, translate(err)
}

func (r *TimePunchRepository) Update(ctx context.Context, p *domain.TimePunch) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}
