package staff

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/pkg/keylock"
	"bwbackbone/internal/pkg/qr"
	"bwbackbone/internal/pkg/validator"
)

const minPinLength = 4

type Service struct {
	staff StaffRepository
	locks *keylock.KeyLock
	now   func() time.Time
}

func NewService(staff StaffRepository, locks *keylock.KeyLock) *Service {
	return &Service{
		staff: staff,
		locks: locks,
		now:   time.Now,
	}
}

// Create registers a staff member. The PIN is stored as a bcrypt hash and
// never leaves the server; the employee id must be unique across the shop.
func (s *Service) Create(ctx context.Context, req CreateStaffRequest) (*domain.Staff, error) {
	if len(req.Roles) == 0 {
		return nil, ErrValidation
	}
	for _, r := range req.Roles {
		if !validRole(r) {
			return nil, ErrValidation
		}
	}
	if req.HourlyRate < 0 {
		return nil, ErrValidation
	}
	if len(req.Pin) < minPinLength {
		return nil, ErrWeakPin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &domain.Staff{
		ID:         uuid.NewString(),
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		EmployeeID: req.EmployeeID,
		PinHash:    string(hash),
		Roles:      req.Roles,
		Department: req.Department,
		Status:     domain.StaffActive,
		ManagerID:  req.ManagerID,
		HourlyRate: req.HourlyRate,
	}
	if errs := validator.Validate(member); errs != nil {
		return nil, ErrValidation
	}
	if err := s.staff.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Staff, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status domain.StaffStatus) ([]domain.Staff, error) {
	return s.staff.List(ctx, status)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateStaffRequest) (*domain.Staff, error) {
	unlock := s.locks.Lock("staff:" + id)
	defer unlock()

	member, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Roles != nil {
		if len(req.Roles) == 0 {
			return nil, ErrValidation
		}
		for _, r := range req.Roles {
			if !validRole(r) {
				return nil, ErrValidation
			}
		}
		member.Roles = req.Roles
	}
	if req.Department != nil {
		member.Department = *req.Department
	}
	if req.ManagerID != nil {
		member.ManagerID = req.ManagerID
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			return nil, ErrValidation
		}
		member.HourlyRate = *req.HourlyRate
	}
	if req.PhotoURL != nil {
		member.PhotoURL = *req.PhotoURL
	}

	if err := s.staff.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Deactivate marks the member inactive. Records are never deleted; punches
// and inspections keep referencing them.
func (s *Service) Deactivate(ctx context.Context, id string) (*domain.Staff, error) {
	unlock := s.locks.Lock("staff:" + id)
	defer unlock()

	member, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	member.Status = domain.StaffInactive
	if err := s.staff.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) Reactivate(ctx context.Context, id string) (*domain.Staff, error) {
	unlock := s.locks.Lock("staff:" + id)
	defer unlock()

	member, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	member.Status = domain.StaffActive
	if err := s.staff.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// BadgePayload builds the QR payload printed on an active member's badge.
func (s *Service) BadgePayload(ctx context.Context, id string) (*qr.Payload, error) {
	member, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member.Status != domain.StaffActive {
		return nil, ErrInactive
	}
	p := qr.StaffPayload(member.ID, member.EmployeeID, s.now().UTC())
	return &p, nil
}

func validRole(r domain.StaffRole) bool {
	switch r {
	case domain.RoleAdmin, domain.RoleManager, domain.RoleEstimator, domain.RoleOperator,
		domain.RoleQA, domain.RoleBilling, domain.RoleMarketing:
		return true
	}
	return false
}
