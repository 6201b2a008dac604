package equipment

import "errors"

var (
	ErrValidation      = errors.New("invalid equipment data")
	ErrMeterRegression = errors.New("meter reading is below the current meter")
	ErrNoMeter         = errors.New("equipment has no usage meter")
	ErrRetired         = errors.New("equipment is retired")
	ErrInvalidStatus   = errors.New("unknown equipment status")
)
