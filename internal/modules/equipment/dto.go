package equipment

import (
	"time"

	"bwbackbone/internal/domain"
)

type CreateEquipmentRequest struct {
	EquipmentName   string           `json:"equipment_name" binding:"required"`
	EquipmentType   string           `json:"equipment_type"`
	Manufacturer    string           `json:"manufacturer"`
	Model           string           `json:"model"`
	SerialNumber    string           `json:"serial_number"`
	MeterType       domain.MeterType `json:"meter_type" binding:"required,oneof=hours cycles miles none"`
	CurrentMeter    *float64         `json:"current_meter"`
	ServiceInterval *float64         `json:"service_interval"`
	NextServiceDue  *float64         `json:"next_service_due"`
	Notes           string           `json:"notes"`
}

type LogUsageRequest struct {
	MeterReading float64 `json:"meter_reading" binding:"required"`
}

type RecordServiceRequest struct {
	ServiceDate    time.Time `json:"service_date" binding:"required"`
	MeterAtService float64   `json:"meter_at_service"`
	Notes          string    `json:"notes"`
}

type StatusChangeRequest struct {
	Status domain.EquipmentStatus `json:"status" binding:"required,oneof=operational down maintenance retired"`
}

// EquipmentView decorates the stored record with the derived service status.
type EquipmentView struct {
	domain.Equipment
	ServiceStatus ServiceStatus `json:"service_status"`
}
