package qc

import "errors"

var (
	ErrMissingSeverity = errors.New("severity is required when the result is not a pass")
	ErrMissingDefects  = errors.New("at least one defect type is required when the result is not a pass")
	ErrPassWithDefects = errors.New("a passing inspection cannot carry severity or defects")
	ErrInvalidResult   = errors.New("unknown inspection result")
)
