package auth

import "bwbackbone/internal/domain"

type LoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Pin        string `json:"pin" binding:"required"`
}

type BadgeLoginRequest struct {
	Payload string `json:"payload" binding:"required"`
	Pin     string `json:"pin" binding:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Staff *domain.Staff `json:"staff"`
}
