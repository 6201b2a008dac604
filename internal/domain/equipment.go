package domain

import "time"

type MeterType string

const (
	MeterHours  MeterType = "hours"
	MeterCycles MeterType = "cycles"
	MeterMiles  MeterType = "miles"
	MeterNone   MeterType = "none"
)

type EquipmentStatus string

const (
	EquipmentOperational EquipmentStatus = "operational"
	EquipmentDown        EquipmentStatus = "down"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentRetired     EquipmentStatus = "retired"
)

type Equipment struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	EquipmentName   string          `json:"equipment_name" validate:"required"`
	EquipmentType   string          `json:"equipment_type"`
	Manufacturer    string          `json:"manufacturer,omitempty"`
	Model           string          `json:"model,omitempty"`
	SerialNumber    string          `json:"serial_number,omitempty"`
	MeterType       MeterType       `json:"meter_type"`
	CurrentMeter    *float64        `json:"current_meter,omitempty"`
	ServiceInterval *float64        `json:"service_interval,omitempty"`
	NextServiceDue  *float64        `json:"next_service_due,omitempty"`
	DriveFolderID   *string         `json:"drive_folder_id,omitempty"`
	Status          EquipmentStatus `json:"status"`
	Notes           string          `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
