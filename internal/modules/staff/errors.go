package staff

import "errors"

var (
	ErrValidation    = errors.New("invalid staff data")
	ErrWeakPin       = errors.New("pin must be at least four digits")
	ErrAlreadyExists = errors.New("employee id is already taken")
	ErrInactive      = errors.New("staff member is inactive")
)
