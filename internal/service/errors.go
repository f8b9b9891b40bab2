package service

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrIDRequired       = errors.New("id is required")
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidBloodType = errors.New("invalid blood type")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrAlreadyExists    = errors.New("already exists")
)

// invalid reports a validation failure that is safe to show to the caller.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

// notFound translates a missing row into ErrNotFound naming what was missing.
func notFound(what string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return err
}

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"
