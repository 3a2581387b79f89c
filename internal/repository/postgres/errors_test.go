package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/medibook/booking-api/internal/repository"
)

func TestTranslateError_NoRows(t *testing.T) {
	err := translateError(sql.ErrNoRows)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	wrapped := translateError(fmt.Errorf("get user: %w", sql.ErrNoRows))
	assert.ErrorIs(t, wrapped, repository.ErrNotFound)
}

func TestTranslateError_UniqueViolation(t *testing.T) {
	pqErr := &pq.Error{
		Code:       "23505",
		Constraint: "users_email_unique",
	}

	err := translateError(pqErr)

	var uv *repository.UniqueViolation
	assert.True(t, errors.As(err, &uv))
	assert.Equal(t, "users_email_unique", uv.Constraint)
	assert.True(t, repository.IsUniqueViolation(err, "users_email_unique"))
	assert.False(t, repository.IsUniqueViolation(err, "appointments_pkey"))
}

func TestTranslateError_OtherErrorsPassThrough(t *testing.T) {
	fkErr := &pq.Error{Code: "23503", Constraint: "appointments_user_id_foreign"}
	assert.Equal(t, error(fkErr), translateError(fkErr))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translateError(plain))

	assert.NoError(t, translateError(nil))
}
