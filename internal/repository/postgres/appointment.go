package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medibook/booking-api/internal/model"
	"github.com/medibook/booking-api/internal/repository"
)

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(base BaseRepository) repository.AppointmentRepository {
	return &appointmentRepository{base}
}

// appointmentDoctorRow scans the appointment/doctor join; the doctor
// columns are aliased with a "doctor." prefix.
type appointmentDoctorRow struct {
	model.Appointment
	Doctor model.Doctor `db:"doctor"`
}

const doctorJoinColumns = `
		d.id AS "doctor.id",
		d.name AS "doctor.name",
		d.specialty AS "doctor.specialty",
		d.image_url AS "doctor.image_url",
		d.rating AS "doctor.rating",
		d.experience AS "doctor.experience",
		d.bio AS "doctor.bio",
		d.available_time AS "doctor.available_time"`

func (r *appointmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.AppointmentWithDoctor, error) {
	query := `
		SELECT
			a.id, a.user_id, a.doctor_id, a.appointment_date,
			a.appointment_time, a.status, a.created_at, a.updated_at,` +
		doctorJoinColumns + `
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.user_id = $1
	`

	rows := []appointmentDoctorRow{}
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	appointments := make([]*model.AppointmentWithDoctor, 0, len(rows))
	for i := range rows {
		appointments = append(appointments, &model.AppointmentWithDoctor{
			Appointment: rows[i].Appointment,
			Doctor:      rows[i].Doctor.Summary(),
		})
	}

	return appointments, nil
}

// Create inserts the appointment and fetches the referenced doctor in
// one transaction, so a returned appointment always carries a doctor
// that existed at commit time.
func (r *appointmentRepository) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, *model.Doctor, error) {
	status := req.Status
	if status == "" {
		status = model.DefaultAppointmentStatus
	}

	var (
		appointment model.Appointment
		doctor      model.Doctor
	)

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		insert := `
			INSERT INTO appointments (user_id, doctor_id, appointment_date, appointment_time, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		`
		if err := tx.GetContext(ctx, &appointment, insert,
			req.UserID,
			req.DoctorID,
			req.Date,
			req.Time,
			status,
		); err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}

		// The foreign key makes a missing doctor unreachable here, but a
		// failed fetch must not surface as not-found to the client.
		return r.getDoctorTx(ctx, tx, appointment.DoctorID, &doctor)
	})
	if err != nil {
		return nil, nil, err
	}

	return &appointment, &doctor, nil
}

// Update overwrites date, time and status, then fetches the doctor in
// the same transaction.
func (r *appointmentRepository) Update(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, *model.Doctor, error) {
	var (
		appointment model.Appointment
		doctor      model.Doctor
	)

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		update := `
			UPDATE appointments SET
				appointment_date = $1,
				appointment_time = $2,
				status = $3,
				updated_at = now()
			WHERE id = $4
			RETURNING *
		`
		if err := tx.GetContext(ctx, &appointment, update,
			req.Date,
			req.Time,
			req.Status,
			id,
		); err != nil {
			return translateError(err)
		}

		return r.getDoctorTx(ctx, tx, appointment.DoctorID, &doctor)
	})
	if err != nil {
		return nil, nil, err
	}

	return &appointment, &doctor, nil
}

func (r *appointmentRepository) getDoctorTx(ctx context.Context, tx *sqlx.Tx, doctorID uuid.UUID, doctor *model.Doctor) error {
	query := `
		SELECT * FROM doctors
		WHERE id = $1
	`
	if err := tx.GetContext(ctx, doctor, query, doctorID); err != nil {
		return fmt.Errorf("failed to fetch doctor %s for appointment: %w", doctorID, err)
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM appointments
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
