package staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/pkg/keylock"
	"bwbackbone/internal/pkg/qr"
	"bwbackbone/internal/repository"
)

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, s *domain.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStaffRepository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Staff, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) List(ctx context.Context, status domain.StaffStatus) ([]domain.Staff, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) Update(ctx context.Context, s *domain.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func newTestService() (*Service, *MockStaffRepository) {
	repo := new(MockStaffRepository)
	svc := NewService(repo, keylock.New())
	svc.now = func() time.Time { return time.Date(2026, time.August, 14, 8, 0, 0, 0, time.UTC) }
	return svc, repo
}

func createReq() CreateStaffRequest {
	return CreateStaffRequest{
		Email:      "dana@bwcoatings.example",
		FirstName:  "Dana",
		LastName:   "Ruiz",
		EmployeeID: "EMP-014",
		Pin:        "4821",
		Roles:      []domain.StaffRole{domain.RoleOperator},
		HourlyRate: 24.5,
	}
}

func TestService_Create_HashesPin(t *testing.T) {
	svc, repo := newTestService()

	var created *domain.Staff
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Staff")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.Staff) }).
		Return(nil)

	member, err := svc.Create(context.Background(), createReq())

	require.NoError(t, err)
	assert.Equal(t, domain.StaffActive, member.Status)
	assert.NotEmpty(t, member.ID)
	require.NotNil(t, created)
	assert.NotEqual(t, "4821", created.PinHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PinHash), []byte("4821")))
}

func TestService_Create_RequiresRole(t *testing.T) {
	svc, repo := newTestService()

	req := createReq()
	req.Roles = nil

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsUnknownRole(t *testing.T) {
	svc, _ := newTestService()

	req := createReq()
	req.Roles = []domain.StaffRole{domain.StaffRole("janitor")}

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_RejectsNegativeRate(t *testing.T) {
	svc, _ := newTestService()

	req := createReq()
	req.HourlyRate = -1

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_RejectsShortPin(t *testing.T) {
	svc, _ := newTestService()

	req := createReq()
	req.Pin = "12"

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrWeakPin)
}

func TestService_Create_DuplicateEmployeeID(t *testing.T) {
	svc, repo := newTestService()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Staff")).Return(repository.ErrConflict)

	_, err := svc.Create(context.Background(), createReq())

	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestService_Deactivate_KeepsRecord(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetByID", mock.Anything, "staff-1").Return(&domain.Staff{ID: "staff-1", Status: domain.StaffActive}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Staff")).Return(nil)

	member, err := svc.Deactivate(context.Background(), "staff-1")

	require.NoError(t, err)
	assert.Equal(t, domain.StaffInactive, member.Status)
	repo.AssertCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_BadgePayload(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetByID", mock.Anything, "staff-1").Return(&domain.Staff{
		ID:         "staff-1",
		EmployeeID: "EMP-014",
		Status:     domain.StaffActive,
	}, nil)

	payload, err := svc.BadgePayload(context.Background(), "staff-1")

	require.NoError(t, err)
	assert.Equal(t, qr.TypeStaff, payload.Type)
	assert.Equal(t, "staff-1", payload.ID)
	assert.Equal(t, "EMP-014", payload.EmployeeID)
}

func TestService_BadgePayload_InactiveStaff(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetByID", mock.Anything, "staff-1").Return(&domain.Staff{
		ID:     "staff-1",
		Status: domain.StaffInactive,
	}, nil)

	_, err := svc.BadgePayload(context.Background(), "staff-1")

	assert.ErrorIs(t, err, ErrInactive)
}
