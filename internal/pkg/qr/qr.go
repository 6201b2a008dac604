// Package qr encodes and decodes the JSON payloads carried by shop badges and
// job travelers. Rendering a payload into a scannable image is an external
// concern; this package deals only in the payload text.
package qr

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	TypeJob       = "job"
	TypeStaff     = "staff"
	TypeEquipment = "equipment"
)

var ErrInvalidPayload = errors.New("invalid qr payload")

// Payload is the structure embedded in every code: a type tag, the entity id,
// one human-readable identifying field and the generation timestamp.
type Payload struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	Number     string    `json:"number,omitempty"`
	EmployeeID string    `json:"employeeId,omitempty"`
	Name       string    `json:"name,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func JobPayload(jobID, jobNumber string, now time.Time) Payload {
	return Payload{Type: TypeJob, ID: jobID, Number: jobNumber, Timestamp: now}
}

func StaffPayload(staffID, employeeID string, now time.Time) Payload {
	return Payload{Type: TypeStaff, ID: staffID, EmployeeID: employeeID, Timestamp: now}
}

func EquipmentPayload(equipmentID, name string, now time.Time) Payload {
	return Payload{Type: TypeEquipment, ID: equipmentID, Name: name, Timestamp: now}
}

func Encode(p Payload) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses scanner input. Payloads missing a type or id are rejected so
// a scan of some unrelated code never resolves to an entity.
func Decode(data string) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, ErrInvalidPayload
	}
	if p.Type == "" || p.ID == "" {
		return nil, ErrInvalidPayload
	}
	return &p, nil
}
