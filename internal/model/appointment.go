package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAppointmentStatus is applied when a create request omits the
// status field. The status set is open-ended; clients may send any
// string.
const DefaultAppointmentStatus = "Upcoming"

// Appointment is a row in the appointments table. The time column is
// free text ("10:00 AM"), never parsed.
type Appointment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	DoctorID  uuid.UUID `json:"doctor_id" db:"doctor_id"`
	Date      time.Time `json:"appointment_date" db:"appointment_date"`
	Time      string    `json:"appointment_time" db:"appointment_time"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AppointmentWithDoctor is a full appointment row joined with its
// doctor, as returned by the per-user list endpoint.
type AppointmentWithDoctor struct {
	Appointment
	Doctor DoctorSummary `json:"doctor"`
}

// AppointmentResponse is the reshaped payload returned by create and
// update.
type AppointmentResponse struct {
	ID     uuid.UUID     `json:"id"`
	Date   time.Time     `json:"date"`
	Time   string        `json:"time"`
	Status string        `json:"status"`
	Doctor DoctorSummary `json:"doctor"`
}

// CreateAppointmentRequest carries the create body (camelCase keys).
// The id fields stay strings so malformed values surface as database
// errors rather than binding failures, keeping the status contract.
type CreateAppointmentRequest struct {
	UserID   string `json:"userId"`
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Status   string `json:"status"`
}

// UpdateAppointmentRequest carries the update body. All three fields
// overwrite the stored row.
type UpdateAppointmentRequest struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
}
