package repository

import (
	stderrors "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an id does not resolve to a record.
	ErrNotFound = stderrors.New("record not found")
	// ErrConflict is returned when a uniqueness invariant would be violated.
	ErrConflict = stderrors.New("uniqueness conflict")
)

// translate maps driver errors onto the repository sentinels. Unique-index
// violations arrive either as gorm.ErrDuplicatedKey, as a pgconn 23505, or as
// a raw SQLite message depending on the backend.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrConflict
	}
	return errors.WithStack(err)
}
