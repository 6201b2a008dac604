package timeclock

import (
	"math"
	"time"
)

const (
	dailyOvertimeHours  = 8.0
	weeklyOvertimeHours = 40.0
)

// HoursBetween returns the worked hours for a closed clock_in/clock_out pair,
// rounded to two decimal places for payroll.
func HoursBetween(clockIn, clockOut time.Time) (float64, error) {
	if clockOut.Before(clockIn) {
		return 0, ErrNegativeDuration
	}
	hours := clockOut.Sub(clockIn).Hours()
	return math.Round(hours*100) / 100, nil
}

// IsOvertime reports whether the hours trigger overtime pay: more than 8
// hours in the day or more than 40 in the week to date. Both thresholds are
// strict; exactly 8 and exactly 40 are straight time.
func IsOvertime(dailyHours, weeklyHours float64) bool {
	return dailyHours > dailyOvertimeHours || weeklyHours > weeklyOvertimeHours
}
