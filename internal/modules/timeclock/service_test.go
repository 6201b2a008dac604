package timeclock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/pkg/keylock"
)

type MockTimePunchRepository struct {
	mock.Mock
}

func (m *MockTimePunchRepository) Create(ctx context.Context, p *domain.TimePunch) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockTimePunchRepository) GetByID(ctx context.Context, id string) (*domain.TimePunch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimePunch), args.Error(1)
}

func (m *MockTimePunchRepository) LastForStaff(ctx context.Context, staffID string) (*domain.TimePunch, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimePunch), args.Error(1)
}

func (m *MockTimePunchRepository) ListForStaff(ctx context.Context, staffID string, from, to time.Time) ([]domain.TimePunch, error) {
	args := m.Called(ctx, staffID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimePunch), args.Error(1)
}

func (m *MockTimePunchRepository) LatestPerStaff(ctx context.Context) ([]domain.TimePunch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimePunch), args.Error(1)
}

func (m *MockTimePunchRepository) ListPending(ctx context.Context, limit int) ([]domain.TimePunch, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimePunch), args.Error(1)
}

func (m *MockTimePunchRepository) Update(ctx context.Context, p *domain.TimePunch) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockStaffReader struct {
	mock.Mock
}

func (m *MockStaffReader) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func newTestService() (*Service, *MockTimePunchRepository, *MockStaffReader) {
	punches := new(MockTimePunchRepository)
	staff := new(MockStaffReader)
	svc := NewService(punches, staff, keylock.New(), nil)
	svc.now = func() time.Time { return time.Date(2026, time.August, 14, 8, 0, 0, 0, time.UTC) }
	return svc, punches, staff
}

func activeStaff(id string) *domain.Staff {
	return &domain.Staff{ID: id, Status: domain.StaffActive, Roles: []domain.StaffRole{domain.RoleOperator}}
}

func lastPunch(staffID string, pt domain.PunchType) *domain.TimePunch {
	return &domain.TimePunch{
		ID:        "prev",
		StaffID:   staffID,
		PunchType: pt,
		Timestamp: time.Date(2026, time.August, 14, 7, 0, 0, 0, time.UTC),
		Status:    domain.PunchApproved,
	}
}

func TestService_ClockIn_FirstPunch(t *testing.T) {
	svc, punches, staff := newTestService()

	staff.On("GetByID", mock.Anything, "staff-1").Return(activeStaff("staff-1"), nil)
	punches.On("LastForStaff", mock.Anything, "staff-1").Return(nil, nil)
	punches.On("Create", mock.Anything, mock.AnythingOfType("*domain.TimePunch")).Return(nil)

	p, err := svc.ClockIn(context.Background(), "staff-1", PunchRequest{Method: domain.MethodQRScan})

	require.NoError(t, err)
	assert.Equal(t, domain.PunchClockIn, p.PunchType)
	assert.Equal(t, domain.PunchPending, p.Status)
	assert.NotEmpty(t, p.ID)
	punches.AssertExpectations(t)
}

func TestService_ClockIn_AlreadyClockedIn(t *testing.T) {
	svc, punches, staff := newTestService()

	staff.On("GetByID", mock.Anything, "staff-1").Return(activeStaff("staff-1"), nil)
	punches.On("LastForStaff", mock.Anything, "staff-1").Return(lastPunch("staff-1", domain.PunchClockIn), nil)

	_, err := svc.ClockIn(context.Background(), "staff-1", PunchRequest{Method: domain.MethodManual})

	assert.ErrorIs(t, err, ErrAlreadyClockedIn)
	punches.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ClockIn_MidBreakStillClockedIn(t *testing.T) {
	svc, punches, staff := newTestService()

	staff.On("GetByID", mock.Anything, "staff-1").Return(activeStaff("staff-1"), nil)
	punches.On("LastForStaff", mock.Anything, "staff-1").Return(lastPunch("staff-1", domain.PunchBreakEnd), nil)

	_, err := svc.ClockIn(context.Background(), "staff-1", PunchRequest{Method: domain.MethodManual})

	assert.ErrorIs(t, err, ErrAlreadyClockedIn)
}

func TestService_ClockOut_NotClockedIn(t *testing.T) {
	svc, punches, staff := newTestService()

	staff.On("GetByID", mock.Anything, "staff-1").Return(activeStaff("staff-1"), nil)
	punches.On("LastForStaff", mock.Anything, "staff-1").Return(lastPunch("staff-1", domain.PunchClockOut), nil)

	_, err := svc.ClockOut(context.Background(), "staff-1", PunchRequest{Method: domain.MethodManual})

	assert.ErrorIs(t, err, ErrNotClockedIn)
}

func TestService_ClockOut_OpenBreak(t *testing.T) {
	svc, punches, staff := newTestService()

	staff.On("GetByID", mock.Anything, "staff-1").Return(activeStaff("staff-1"), nil)
	punches.On("LastForStaff", mock.Anything, "staff-1").Return(lastPunch("staff-1", domain.PunchBreakStart), nil)

	_, err := svc.ClockOut(context.Background(), "staff-1", PunchRequest{Method: domain.MethodManual})

	assert.ErrorIs(t, err, ErrBreakOpen)
}

func TestService_ClockOut_AfterBreakEnd(t *testing.T) {
	svc, punches, staff := newTestService()

	staff.On("GetByID", mock.Anything, "staff-1").Return(activeStaff("staff-1"), nil)
	punches.On("LastForStaff", mock.Anything, "staff-1").Return(lastPunch("staff-1", domain.PunchBreakEnd), nil)
	punches.On("Create", mock.Anything, mock.AnythingOfType("*domain.TimePunch")).Return(nil)

	p, err := svc.ClockOut(context.Background(), "staff-1", PunchRequest{Method: domain.MethodQRScan})

	require.NoError(t, err)
	assert.Equal(t, domain.PunchClockOut, p.PunchType)
}

func TestService_EndBreak_NotOnBreak(t *testing.T) {
	svc, punches, staff := newTestService()

	staff.On("GetByID", mock.Anything, "staff-1").Return(activeStaff("staff-1"), nil)
	punches.On("LastForStaff", mock.Anything, "staff-1").Return(lastPunch("staff-1", domain.PunchClockIn), nil)

	_, err := svc.EndBreak(context.Background(), "staff-1", PunchRequest{Method: domain.MethodManual})

	assert.ErrorIs(t, err, ErrNotOnBreak)
}

func TestService_ClockIn_InactiveStaff(t *testing.T) {
	svc, punches, staff := newTestService()

	inactive := activeStaff("staff-1")
	inactive.Status = domain.StaffInactive
	staff.On("GetByID", mock.Anything, "staff-1").Return(inactive, nil)

	_, err := svc.ClockIn(context.Background(), "staff-1", PunchRequest{Method: domain.MethodQRScan})

	assert.ErrorIs(t, err, ErrStaffInactive)
	punches.AssertNotCalled(t, "LastForStaff", mock.Anything, mock.Anything)
}

// memPunchRepo is a thread-safe in-memory ledger for the concurrency test;
// mock.Mock cannot express state that changes between the two racing calls.
type memPunchRepo struct {
	mu      sync.Mutex
	punches []domain.TimePunch
}

func (r *memPunchRepo) Create(ctx context.Context, p *domain.TimePunch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.punches = append(r.punches, *p)
	return nil
}

func (r *memPunchRepo) GetByID(ctx context.Context, id string) (*domain.TimePunch, error) {
	return nil, nil
}

func (r *memPunchRepo) LastForStaff(ctx context.Context, staffID string) (*domain.TimePunch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.punches) - 1; i >= 0; i-- {
		if r.punches[i].StaffID == staffID {
			p := r.punches[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memPunchRepo) ListForStaff(ctx context.Context, staffID string, from, to time.Time) ([]domain.TimePunch, error) {
	return nil, nil
}

func (r *memPunchRepo) LatestPerStaff(ctx context.Context) ([]domain.TimePunch, error) {
	return nil, nil
}

func (r *memPunchRepo) ListPending(ctx context.Context, limit int) ([]domain.TimePunch, error) {
	return nil, nil
}

func (r *memPunchRepo) Update(ctx context.Context, p *domain.TimePunch) error {
	return nil
}

func TestService_ClockIn_ConcurrentOnlyOneSucceeds(t *testing.T) {
	repo := &memPunchRepo{}
	staff := new(MockStaffReader)
	staff.On("GetByID", mock.Anything, "staff-1").Return(activeStaff("staff-1"), nil)

	svc := NewService(repo, staff, keylock.New(), nil)

	const attempts = 10
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ClockIn(context.Background(), "staff-1", PunchRequest{Method: domain.MethodQRScan})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, rejected int
	for err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyClockedIn)
			rejected++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, rejected)
	assert.Len(t, repo.punches, 1)
}

func TestService_CurrentlyClockedIn(t *testing.T) {
	svc, punches, _ := newTestService()

	since := time.Date(2026, time.August, 14, 6, 0, 0, 0, time.UTC)
	punches.On("LatestPerStaff", mock.Anything).Return([]domain.TimePunch{
		{StaffID: "staff-1", PunchType: domain.PunchClockIn, Timestamp: since},
		{StaffID: "staff-2", PunchType: domain.PunchClockOut},
		{StaffID: "staff-3", PunchType: domain.PunchBreakStart},
	}, nil)

	active, err := svc.CurrentlyClockedIn(context.Background())

	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "staff-1", active[0].StaffID)
	assert.Equal(t, since, active[0].Since)
}

func TestService_Timesheet_HoursAndOvertime(t *testing.T) {
	svc, punches, staff := newTestService()

	staff.On("GetByID", mock.Anything, "staff-1").Return(activeStaff("staff-1"), nil)

	day := func(d, h, m int) time.Time {
		return time.Date(2026, time.August, d, h, m, 0, 0, time.UTC)
	}
	week := []domain.TimePunch{
		// Mon 10h, Tue-Thu 8h each, Fri 7h: Friday alone is under eight
		// hours but tips the week past forty.
		{StaffID: "staff-1", PunchType: domain.PunchClockIn, Timestamp: day(10, 7, 0)},
		{StaffID: "staff-1", PunchType: domain.PunchClockOut, Timestamp: day(10, 17, 0)},
		{StaffID: "staff-1", PunchType: domain.PunchClockIn, Timestamp: day(11, 7, 0)},
		{StaffID: "staff-1", PunchType: domain.PunchClockOut, Timestamp: day(11, 15, 0)},
		{StaffID: "staff-1", PunchType: domain.PunchClockIn, Timestamp: day(12, 7, 0)},
		{StaffID: "staff-1", PunchType: domain.PunchClockOut, Timestamp: day(12, 15, 0)},
		{StaffID: "staff-1", PunchType: domain.PunchClockIn, Timestamp: day(13, 7, 0)},
		{StaffID: "staff-1", PunchType: domain.PunchClockOut, Timestamp: day(13, 15, 0)},
		{StaffID: "staff-1", PunchType: domain.PunchClockIn, Timestamp: day(14, 8, 0)},
		{StaffID: "staff-1", PunchType: domain.PunchClockOut, Timestamp: day(14, 15, 0)},
	}
	from := day(10, 0, 0)
	to := day(15, 0, 0)
	punches.On("ListForStaff", mock.Anything, "staff-1", from, to).Return(week, nil)

	sheet, err := svc.Timesheet(context.Background(), "staff-1", from, to)

	require.NoError(t, err)
	require.Len(t, sheet.Days, 5)
	assert.Equal(t, 10.0, sheet.Days[0].Hours)
	assert.True(t, sheet.Days[0].Overtime, "daily hours over eight")
	assert.False(t, sheet.Days[1].Overtime)
	assert.Equal(t, 7.0, sheet.Days[4].Hours)
	assert.True(t, sheet.Days[4].Overtime, "weekly hours over forty")
	assert.Equal(t, 41.0, sheet.TotalHours)
}

func TestService_Timesheet_BreaksDoNotSplitShift(t *testing.T) {
	svc, punches, staff := newTestService()

	staff.On("GetByID", mock.Anything, "staff-1").Return(activeStaff("staff-1"), nil)

	at := func(h, m int) time.Time {
		return time.Date(2026, time.August, 14, h, m, 0, 0, time.UTC)
	}
	shift := []domain.TimePunch{
		{StaffID: "staff-1", PunchType: domain.PunchClockIn, Timestamp: at(8, 0)},
		{StaffID: "staff-1", PunchType: domain.PunchBreakStart, Timestamp: at(12, 0)},
		{StaffID: "staff-1", PunchType: domain.PunchBreakEnd, Timestamp: at(12, 30)},
		{StaffID: "staff-1", PunchType: domain.PunchClockOut, Timestamp: at(16, 0)},
	}
	from := time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	punches.On("ListForStaff", mock.Anything, "staff-1", from, to).Return(shift, nil)

	sheet, err := svc.Timesheet(context.Background(), "staff-1", from, to)

	require.NoError(t, err)
	require.Len(t, sheet.Days, 1)
	assert.Equal(t, 8.0, sheet.Days[0].Hours)
	assert.False(t, sheet.Days[0].Overtime)
}

func TestService_Approve_SetsReviewer(t *testing.T) {
	svc, punches, _ := newTestService()

	pending := lastPunch("staff-1", domain.PunchClockIn)
	pending.Status = domain.PunchPending
	punches.On("GetByID", mock.Anything, "prev").Return(pending, nil)
	punches.On("Update", mock.Anything, mock.AnythingOfType("*domain.TimePunch")).Return(nil)

	p, err := svc.Approve(context.Background(), "prev", "mgr-1")

	require.NoError(t, err)
	assert.Equal(t, domain.PunchApproved, p.Status)
	require.NotNil(t, p.ReviewedBy)
	assert.Equal(t, "mgr-1", *p.ReviewedBy)
	assert.NotNil(t, p.ReviewedAt)
}

func TestService_Approve_ImmutableOnceReviewed(t *testing.T) {
	svc, punches, _ := newTestService()

	approved := lastPunch("staff-1", domain.PunchClockIn)
	approved.Status = domain.PunchApproved
	punches.On("GetByID", mock.Anything, "prev").Return(approved, nil)

	_, err := svc.Approve(context.Background(), "prev", "mgr-1")

	assert.ErrorIs(t, err, ErrPunchImmutable)
	punches.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Edit_RewritesTimestamp(t *testing.T) {
	svc, punches, _ := newTestService()

	pending := lastPunch("staff-1", domain.PunchClockOut)
	pending.Status = domain.PunchPending
	punches.On("GetByID", mock.Anything, "prev").Return(pending, nil)
	punches.On("Update", mock.Anything, mock.AnythingOfType("*domain.TimePunch")).Return(nil)

	corrected := time.Date(2026, time.August, 14, 16, 15, 0, 0, time.UTC)
	p, err := svc.Edit(context.Background(), "prev", "mgr-1", ReviewRequest{Timestamp: &corrected, Notes: "forgot to punch out"})

	require.NoError(t, err)
	assert.Equal(t, domain.PunchEdited, p.Status)
	assert.Equal(t, corrected, p.Timestamp)
	assert.Equal(t, "forgot to punch out", p.Notes)
}
