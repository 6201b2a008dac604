package timeclock

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"bwbackbone/internal/domain"
	"bwbackbone/internal/events"
	"bwbackbone/internal/pkg/keylock"
)

type Service struct {
	punches TimePunchRepository
	staff   StaffReader
	locks   *keylock.KeyLock
	events  EventSink
	now     func() time.Time
}

func NewService(punches TimePunchRepository, staff StaffReader, locks *keylock.KeyLock, sink EventSink) *Service {
	return &Service{
		punches: punches,
		staff:   staff,
		locks:   locks,
		events:  sink,
		now:     time.Now,
	}
}

// ClockIn opens a shift. The last punch is re-read under the staff lock so
// two concurrent clock-ins cannot both see a closed shift.
func (s *Service) ClockIn(ctx context.Context, staffID string, req PunchRequest) (*domain.TimePunch, error) {
	return s.punch(ctx, staffID, domain.PunchClockIn, req, func(last *domain.TimePunch) error {
		if last != nil && last.PunchType != domain.PunchClockOut {
			return ErrAlreadyClockedIn
		}
		return nil
	})
}

func (s *Service) ClockOut(ctx context.Context, staffID string, req PunchRequest) (*domain.TimePunch, error) {
	return s.punch(ctx, staffID, domain.PunchClockOut, req, func(last *domain.TimePunch) error {
		switch {
		case last == nil || last.PunchType == domain.PunchClockOut:
			return ErrNotClockedIn
		case last.PunchType == domain.PunchBreakStart:
			return ErrBreakOpen
		default:
			return nil
		}
	})
}

func (s *Service) StartBreak(ctx context.Context, staffID string, req PunchRequest) (*domain.TimePunch, error) {
	return s.punch(ctx, staffID, domain.PunchBreakStart, req, func(last *domain.TimePunch) error {
		switch {
		case last == nil || last.PunchType == domain.PunchClockOut:
			return ErrNotClockedIn
		case last.PunchType == domain.PunchBreakStart:
			return ErrBreakOpen
		default:
			return nil
		}
	})
}

func (s *Service) EndBreak(ctx context.Context, staffID string, req PunchRequest) (*domain.TimePunch, error) {
	return s.punch(ctx, staffID, domain.PunchBreakEnd, req, func(last *domain.TimePunch) error {
		if last == nil || last.PunchType != domain.PunchBreakStart {
			return ErrNotOnBreak
		}
		return nil
	})
}

func (s *Service) punch(ctx context.Context, staffID string, pt domain.PunchType, req PunchRequest, check func(last *domain.TimePunch) error) (*domain.TimePunch, error) {
	member, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if member.Status != domain.StaffActive {
		return nil, ErrStaffInactive
	}

	unlock := s.locks.Lock("staff:" + staffID)
	defer unlock()

	last, err := s.punches.LastForStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if err := check(last); err != nil {
		return nil, err
	}

	p := &domain.TimePunch{
		ID:          uuid.NewString(),
		StaffID:     staffID,
		PunchType:   pt,
		PunchMethod: req.Method,
		Timestamp:   s.now().UTC(),
		Location:    req.Location,
		Notes:       req.Notes,
		Status:      domain.PunchPending,
	}
	if err := s.punches.Create(ctx, p); err != nil {
		return nil, err
	}

	s.publish(ctx, p)
	return p, nil
}

func (s *Service) publish(ctx context.Context, p *domain.TimePunch) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, events.TopicPunchRecorded, p)
}

// CurrentlyClockedIn reports every staff member whose most recent punch is a
// clock_in. Staff mid-break show a break punch as their latest and are not
// listed here; the floor view treats them separately.
func (s *Service) CurrentlyClockedIn(ctx context.Context) ([]ClockedInStaff, error) {
	latest, err := s.punches.LatestPerStaff(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClockedInStaff, 0, len(latest))
	for _, p := range latest {
		if p.PunchType == domain.PunchClockIn {
			out = append(out, ClockedInStaff{StaffID: p.StaffID, Since: p.Timestamp})
		}
	}
	return out, nil
}

// Timesheet folds a staff member's punches in [from, to) into per-day worked
// hours with overtime flags. Break punches do not affect worked time; hours
// run clock_in to clock_out. The weekly threshold is checked against hours
// accumulated so far in the same ISO week, so a short Friday still flags once
// the week crosses forty.
func (s *Service) Timesheet(ctx context.Context, staffID string, from, to time.Time) (*Timesheet, error) {
	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		return nil, err
	}
	punches, err := s.punches.ListForStaff(ctx, staffID, from, to)
	if err != nil {
		return nil, err
	}

	dayHours := map[string]float64{}
	var order []string
	var open *domain.TimePunch
	for i := range punches {
		p := &punches[i]
		switch p.PunchType {
		case domain.PunchClockIn:
			open = p
		case domain.PunchClockOut:
			if open == nil {
				continue
			}
			h, err := HoursBetween(open.Timestamp, p.Timestamp)
			if err != nil {
				return nil, err
			}
			day := open.Timestamp.Format("2006-01-02")
			if _, seen := dayHours[day]; !seen {
				order = append(order, day)
			}
			dayHours[day] += h
			open = nil
		}
	}

	sheet := &Timesheet{StaffID: staffID, From: from, To: to, Days: make([]TimesheetDay, 0, len(order))}
	weekHours := map[string]float64{}
	for _, day := range order {
		d, _ := time.Parse("2006-01-02", day)
		year, week := d.ISOWeek()
		wk := fmt.Sprintf("%d-W%02d", year, week)
		weekHours[wk] += dayHours[day]

		h := math.Round(dayHours[day]*100) / 100
		sheet.Days = append(sheet.Days, TimesheetDay{
			Date:     day,
			Hours:    h,
			Overtime: IsOvertime(h, weekHours[wk]),
		})
		sheet.TotalHours += h
	}
	sheet.TotalHours = math.Round(sheet.TotalHours*100) / 100
	return sheet, nil
}

func (s *Service) ListPending(ctx context.Context, limit int) ([]domain.TimePunch, error) {
	return s.punches.ListPending(ctx, limit)
}

// Approve freezes a pending punch. Approved punches are immutable.
func (s *Service) Approve(ctx context.Context, punchID, reviewerID string) (*domain.TimePunch, error) {
	return s.review(ctx, punchID, reviewerID, domain.PunchApproved, nil)
}

func (s *Service) Decline(ctx context.Context, punchID, reviewerID string) (*domain.TimePunch, error) {
	return s.review(ctx, punchID, reviewerID, domain.PunchDeclined, nil)
}

// Edit corrects a pending punch's timestamp or notes and marks it edited.
func (s *Service) Edit(ctx context.Context, punchID, reviewerID string, req ReviewRequest) (*domain.TimePunch, error) {
	return s.review(ctx, punchID, reviewerID, domain.PunchEdited, &req)
}

func (s *Service) review(ctx context.Context, punchID, reviewerID string, to domain.PunchStatus, edit *ReviewRequest) (*domain.TimePunch, error) {
	p, err := s.punches.GetByID(ctx, punchID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock("staff:" + p.StaffID)
	defer unlock()

	p, err = s.punches.GetByID(ctx, punchID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PunchPending {
		return nil, ErrPunchImmutable
	}

	if edit != nil {
		if edit.Timestamp != nil {
			p.Timestamp = edit.Timestamp.UTC()
		}
		if edit.Notes != "" {
			p.Notes = edit.Notes
		}
	}

	now := s.now().UTC()
	p.Status = to
	p.ReviewedBy = &reviewerID
	p.ReviewedAt = &now
	if err := s.punches.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
