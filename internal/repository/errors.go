package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no row matched the given id.
var ErrNotFound = errors.New("not found")

// UniqueViolation reports a unique-constraint failure. It is produced
// by the storage layer so nothing above it has to know the database
// driver's error shape.
type UniqueViolation struct {
	Constraint string
}

func (e *UniqueViolation) Error() string {
	return fmt.Sprintf("unique constraint %q violated", e.Constraint)
}

// IsUniqueViolation reports whether err is a unique-constraint failure,
// optionally on a specific constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var uv *UniqueViolation
	if !errors.As(err, &uv) {
		return false
	}
	return constraint == "" || uv.Constraint == constraint
}
