package equipment

import "bwbackbone/internal/domain"

// ServiceStatus is the derived maintenance urgency for a piece of equipment.
type ServiceStatus string

const (
	StatusUnknown ServiceStatus = "unknown"
	StatusOK      ServiceStatus = "ok"
	StatusDueSoon ServiceStatus = "due_soon"
	StatusDueNow  ServiceStatus = "due_now"
)

const (
	dueNowPercent  = 10.0
	dueSoonPercent = 25.0
)

// Classify derives the maintenance status from the meter position. Unknown
// when the equipment carries no meter or the readings are missing. Percent
// remaining is measured against the full service interval, so a machine at
// 4800 of a due point of 5000 on a 1000-unit interval has 20% of its
// interval left.
func Classify(e *domain.Equipment) ServiceStatus {
	if e.MeterType == domain.MeterNone || e.CurrentMeter == nil || e.NextServiceDue == nil {
		return StatusUnknown
	}
	if e.ServiceInterval == nil || *e.ServiceInterval <= 0 {
		return StatusUnknown
	}

	remaining := *e.NextServiceDue - *e.CurrentMeter
	percentRemaining := remaining / *e.ServiceInterval * 100

	switch {
	case percentRemaining <= dueNowPercent:
		return StatusDueNow
	case percentRemaining <= dueSoonPercent:
		return StatusDueSoon
	default:
		return StatusOK
	}
}
