package domain

import "time"

type PunchType string

const (
	PunchClockIn    PunchType = "clock_in"
	PunchClockOut   PunchType = "clock_out"
	PunchBreakStart PunchType = "break_start"
	PunchBreakEnd   PunchType = "break_end"
)

type PunchMethod string

const (
	MethodQRScan     PunchMethod = "qr_scan"
	MethodGoogleAuth PunchMethod = "google_auth"
	MethodManual     PunchMethod = "manual"
)

type PunchStatus string

const (
	PunchPending  PunchStatus = "pending"
	PunchApproved PunchStatus = "approved"
	PunchDeclined PunchStatus = "declined"
	PunchEdited   PunchStatus = "edited"
)

// TimePunch is an append-only clock event. Punches for a staff member,
// ordered by timestamp, alternate clock_in/clock_out with break punches
// nested inside an open shift. Approved punches are immutable.
type TimePunch struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	StaffID     string      `json:"staff_id" gorm:"index"`
	PunchType   PunchType   `json:"punch_type"`
	PunchMethod PunchMethod `json:"punch_method"`
	Timestamp   time.Time   `json:"timestamp" gorm:"index"`
	Location    string      `json:"location,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	Status      PunchStatus `json:"status"`
	ReviewedBy  *string     `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time  `json:"reviewed_at,omitempty"`
}
