package database

import (
	"errors"

	"gorm.io/gorm"
)

// ConflictError reports a unique-constraint violation on a named column.
// It is built by the layer that performed the write, which knows which
// column collided, so callers never inspect driver error strings.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return e.Field + " already exists"
}

// IsDuplicateKey reports whether err is a unique-constraint violation
// surfaced by the store. Relies on gorm's error translation, which maps
// both the postgres and sqlite drivers to ErrDuplicatedKey.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// AsConflict unwraps a ConflictError if err carries one.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
