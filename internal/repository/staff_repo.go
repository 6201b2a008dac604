package repository

import (
	"context"

	"gorm.io/gorm"

	"bwbackbone/internal/domain"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, s *domain.Staff) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *StaffRepository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	var s domain.Staff
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *StaffRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Staff, error) {
	var s domain.Staff
	if err := r.db.WithContext(ctx).First(&s, "employee_id = ?", employeeID).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *StaffRepository) List(ctx context.Context, status domain.StaffStatus) ([]domain.Staff, error) {
	q := r.db.WithContext(ctx).Order("last_name asc, first_name asc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []domain.Staff
	err := q.Find(&out).Error
	return out, translate(err)
}

func (r *StaffRepository) Update(ctx context.Context, s *domain.Staff) error {
	return translate(r.db.WithContext(ctx).Save(s).Error)
}
