package domain

import "time"

type StaffRole string

const (
	RoleAdmin     StaffRole = "admin"
	RoleManager   StaffRole = "manager"
	RoleEstimator StaffRole = "estimator"
	RoleOperator  StaffRole = "operator"
	RoleQA        StaffRole = "qa"
	RoleBilling   StaffRole = "billing"
	RoleMarketing StaffRole = "marketing"
)

type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"
)

type Staff struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	Email      string      `json:"email" validate:"required,email"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	EmployeeID string      `json:"employee_id" gorm:"uniqueIndex"`
	PinHash    string      `json:"-"`
	Roles      []StaffRole `json:"role" gorm:"serializer:json" validate:"required,min=1"`
	Department string      `json:"department,omitempty"`
	Status     StaffStatus `json:"status"`
	ManagerID  *string     `json:"manager_id,omitempty"`
	PhotoURL   string      `json:"photo_url,omitempty"`
	HourlyRate float64     `json:"hourly_rate" validate:"gte=0"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (s *Staff) HasRole(role StaffRole) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}
