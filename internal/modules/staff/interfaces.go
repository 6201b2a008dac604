package staff

import (
	"context"

	"bwbackbone/internal/domain"
)

type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Staff, error)
	List(ctx context.Context, status domain.StaffStatus) ([]domain.Staff, error)
	Update(ctx context.Context, s *domain.Staff) error
}
