package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/pkg/jwt"
	"bwbackbone/internal/pkg/qr"
	"bwbackbone/internal/repository"
)

type StaffReader interface {
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Staff, error)
}

type Service struct {
	staff  StaffReader
	tokens *jwt.Service
}

func NewService(staff StaffReader, tokens *jwt.Service) *Service {
	return &Service{staff: staff, tokens: tokens}
}

// Login exchanges an employee id and PIN for a signed token. A missing
// member and a wrong PIN both come back as invalid credentials so the
// endpoint cannot be used to probe which employee ids exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	member, err := s.staff.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return s.issue(member, req.Pin)
}

// BadgeLogin authenticates a scanned badge payload plus PIN.
func (s *Service) BadgeLogin(ctx context.Context, req BadgeLoginRequest) (*LoginResponse, error) {
	payload, err := qr.Decode(req.Payload)
	if err != nil || payload.Type != qr.TypeStaff {
		return nil, ErrInvalidCredentials
	}

	member, err := s.staff.GetByID(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return s.issue(member, req.Pin)
}

func (s *Service) issue(member *domain.Staff, pin string) (*LoginResponse, error) {
	if member.Status != domain.StaffActive {
		return nil, ErrStaffInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(member.PinHash), []byte(pin)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(member.ID, member.Roles)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, Staff: member}, nil
}
