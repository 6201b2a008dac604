package repository

import (
	"context"

	"gorm.io/gorm"

	"bwbackbone/internal/domain"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []domain.Customer
	err := r.db.WithContext(ctx).
		Order("company_name asc").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, translate(err)
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	return translate(r.db.WithContext(ctx).Save(c).Error)
}
