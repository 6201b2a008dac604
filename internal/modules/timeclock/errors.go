package timeclock

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("staff member is already clocked in")
	ErrNotClockedIn     = errors.New("staff member is not clocked in")
	ErrBreakOpen        = errors.New("an open break must be ended first")
	ErrNotOnBreak       = errors.New("staff member is not on break")
	ErrNegativeDuration = errors.New("clock out precedes clock in")
	ErrPunchImmutable   = errors.New("reviewed punches cannot be changed")
	ErrStaffInactive    = errors.New("staff member is inactive")
)
