package operation

import (
	"errors"
	"fmt"

	"bwbackbone/internal/domain"
)

var (
	ErrSequenceViolation = errors.New("operation started out of sequence")
	ErrInvalidTransition = errors.New("invalid operation status transition")
)

func invalidTransition(from, to domain.OperationStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
