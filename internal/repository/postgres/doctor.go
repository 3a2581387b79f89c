package postgres

import (
	"context"
	"fmt"

	"github.com/medibook/booking-api/internal/model"
	"github.com/medibook/booking-api/internal/repository"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(base BaseRepository) repository.DoctorRepository {
	return &doctorRepository{base}
}

func (r *doctorRepository) List(ctx context.Context, specialty string) ([]*model.Doctor, error) {
	query := `SELECT * FROM doctors`
	args := []interface{}{}

	// Exact, case-sensitive match when a specialty filter is supplied.
	if specialty != "" {
		query += ` WHERE specialty = $1`
		args = append(args, specialty)
	}

	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	return doctors, nil
}

func (r *doctorRepository) Get(ctx context.Context, id string) (*model.Doctor, error) {
	query := `
		SELECT * FROM doctors
		WHERE id = $1
	`

	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		return nil, translateError(err)
	}

	return &doctor, nil
}

func (r *doctorRepository) ListSpecialties(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT specialty FROM doctors`

	specialties := []string{}
	if err := r.db.SelectContext(ctx, &specialties, query); err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}

	return specialties, nil
}
