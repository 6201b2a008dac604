package job

import (
	"errors"
	"fmt"

	"bwbackbone/internal/domain"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid job status transition")
	ErrPartLocked        = errors.New("parts can only be removed before approval")
	ErrNumberExhausted   = errors.New("could not generate a unique job number")
)

// invalidTransition names the current state and the attempted target so the
// caller can show the operator exactly what was refused.
func invalidTransition(from, to domain.JobStatus, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return fmt.Errorf("%w: %s -> %s (%s)", ErrInvalidTransition, from, to, reason)
}
