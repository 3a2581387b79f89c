package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/medibook/booking-api/internal/model"
)

type UserRepository interface {
	List(ctx context.Context) ([]*model.UserListItem, error)
	Get(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, req *model.UpsertUserRequest) (*model.User, error)
	Update(ctx context.Context, id string, req *model.UpsertUserRequest) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type DoctorRepository interface {
	List(ctx context.Context, specialty string) ([]*model.Doctor, error)
	Get(ctx context.Context, id string) (*model.Doctor, error)
	ListSpecialties(ctx context.Context) ([]string, error)
}

type AppointmentRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.AppointmentWithDoctor, error)
	Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, *model.Doctor, error)
	Update(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, *model.Doctor, error)
	Delete(ctx context.Context, id string) error
}
