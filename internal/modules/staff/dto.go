package staff

import "bwbackbone/internal/domain"

type CreateStaffRequest struct {
	Email      string             `json:"email" binding:"required,email"`
	FirstName  string             `json:"first_name" binding:"required"`
	LastName   string             `json:"last_name" binding:"required"`
	EmployeeID string             `json:"employee_id" binding:"required"`
	Pin        string             `json:"pin" binding:"required"`
	Roles      []domain.StaffRole `json:"roles" binding:"required,min=1"`
	Department string             `json:"department"`
	ManagerID  *string            `json:"manager_id"`
	HourlyRate float64            `json:"hourly_rate"`
}

type UpdateStaffRequest struct {
	Email      *string            `json:"email"`
	FirstName  *string            `json:"first_name"`
	LastName   *string            `json:"last_name"`
	Roles      []domain.StaffRole `json:"roles"`
	Department *string            `json:"department"`
	ManagerID  *string            `json:"manager_id"`
	HourlyRate *float64           `json:"hourly_rate"`
	PhotoURL   *string            `json:"photo_url"`
}
