package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/medibook/booking-api/internal/repository"
)

const uniqueViolationCode = "23505"

// translateError maps driver errors onto the repository error types.
// This is the only place that inspects lib/pq error shapes.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return &repository.UniqueViolation{Constraint: pqErr.Constraint}
	}
	return err
}
