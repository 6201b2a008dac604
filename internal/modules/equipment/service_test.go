package equipment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/pkg/keylock"
)

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) List(ctx context.Context, status domain.EquipmentStatus) ([]domain.Equipment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func newTestService() (*Service, *MockEquipmentRepository) {
	repo := new(MockEquipmentRepository)
	return NewService(repo, keylock.New(), nil), repo
}

func oven(meter, interval, due float64) *domain.Equipment {
	return &domain.Equipment{
		ID:              "eq-1",
		EquipmentName:   "Cure Oven 2",
		MeterType:       domain.MeterHours,
		CurrentMeter:    f(meter),
		ServiceInterval: f(interval),
		NextServiceDue:  f(due),
		Status:          domain.EquipmentOperational,
	}
}

func TestService_LogUsage_AdvancesMeter(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetByID", mock.Anything, "eq-1").Return(oven(4700, 1000, 5000), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Equipment")).Return(nil)

	view, err := svc.LogUsage(context.Background(), "eq-1", LogUsageRequest{MeterReading: 4800})

	require.NoError(t, err)
	assert.Equal(t, 4800.0, *view.CurrentMeter)
	assert.Equal(t, StatusDueSoon, view.ServiceStatus)
}

func TestService_LogUsage_RejectsRegression(t *testing.T) {
	svc, repo := newTestService()

	repo.On("GetByID", mock.Anything, "eq-1").Return(oven(4700, 1000, 5000), nil)

	_, err := svc.LogUsage(context.Background(), "eq-1", LogUsageRequest{MeterReading: 4600})

	assert.ErrorIs(t, err, ErrMeterRegression)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_LogUsage_NoMeter(t *testing.T) {
	svc, repo := newTestService()

	e := oven(0, 0, 0)
	e.MeterType = domain.MeterNone
	repo.On("GetByID", mock.Anything, "eq-1").Return(e, nil)

	_, err := svc.LogUsage(context.Background(), "eq-1", LogUsageRequest{MeterReading: 10})

	assert.ErrorIs(t, err, ErrNoMeter)
}

func TestService_RecordService_ResetsDuePoint(t *testing.T) {
	svc, repo := newTestService()

	e := oven(4950, 1000, 5000)
	e.Status = domain.EquipmentMaintenance
	repo.On("GetByID", mock.Anything, "eq-1").Return(e, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Equipment")).Return(nil)

	view, err := svc.RecordService(context.Background(), "eq-1", RecordServiceRequest{
		ServiceDate:    time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC),
		MeterAtService: 4960,
	})

	require.NoError(t, err)
	assert.Equal(t, 5960.0, *view.NextServiceDue)
	assert.Equal(t, 4960.0, *view.CurrentMeter)
	assert.Equal(t, domain.EquipmentOperational, view.Status)
	assert.Equal(t, StatusOK, view.ServiceStatus)
}

func TestService_SetStatus_RetiredIsTerminal(t *testing.T) {
	svc, repo := newTestService()

	e := oven(100, 1000, 1000)
	e.Status = domain.EquipmentRetired
	repo.On("GetByID", mock.Anything, "eq-1").Return(e, nil)

	_, err := svc.SetStatus(context.Background(), "eq-1", domain.EquipmentOperational)

	assert.ErrorIs(t, err, ErrRetired)
}

func TestService_SetStatus_UnknownStatus(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SetStatus(context.Background(), "eq-1", domain.EquipmentStatus("scrapped"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_DueForService_FiltersRetiredAndHealthy(t *testing.T) {
	svc, repo := newTestService()

	retired := *oven(4950, 1000, 5000)
	retired.ID = "eq-2"
	retired.Status = domain.EquipmentRetired
	healthy := *oven(4000, 1000, 5000)
	healthy.ID = "eq-3"

	repo.On("List", mock.Anything, domain.EquipmentStatus("")).Return([]domain.Equipment{
		*oven(4950, 1000, 5000),
		retired,
		healthy,
	}, nil)

	due, err := svc.DueForService(context.Background())

	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "eq-1", due[0].ID)
	assert.Equal(t, StatusDueNow, due[0].ServiceStatus)
}

func TestService_Create_RejectsNonPositiveInterval(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), CreateEquipmentRequest{
		EquipmentName:   "Blast Cabinet",
		MeterType:       domain.MeterCycles,
		ServiceInterval: f(0),
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
