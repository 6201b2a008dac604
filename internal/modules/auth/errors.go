package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid employee id or pin")
	ErrStaffInactive      = errors.New("staff member is inactive")
)
