package timeclock

import (
	"time"

	"bwbackbone/internal/domain"
)

type PunchRequest struct {
	Method   domain.PunchMethod `json:"method" binding:"required,oneof=qr_scan google_auth manual"`
	Location string             `json:"location"`
	Notes    string             `json:"notes"`
}

type ReviewRequest struct {
	Timestamp *time.Time `json:"timestamp"`
	Notes     string     `json:"notes"`
}

// TimesheetDay aggregates one calendar day of closed punch pairs.
type TimesheetDay struct {
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	Overtime bool    `json:"overtime"`
}

type Timesheet struct {
	StaffID    string         `json:"staff_id"`
	From       time.Time      `json:"from"`
	To         time.Time      `json:"to"`
	Days       []TimesheetDay `json:"days"`
	TotalHours float64        `json:"total_hours"`
}

type ClockedInStaff struct {
	StaffID string    `json:"staff_id"`
	Since   time.Time `json:"since"`
}
