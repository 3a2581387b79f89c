package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medibook/booking-api/internal/model"
	"github.com/medibook/booking-api/internal/repository"
)

type AppointmentService interface {
	ListAppointments(ctx context.Context, userID uuid.UUID) ([]*model.AppointmentWithDoctor, error)
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id string) error
}

type Service struct {
	repo repository.AppointmentRepository
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAppointments(ctx context.Context, userID uuid.UUID) ([]*model.AppointmentWithDoctor, error) {
	appointments, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.AppointmentResponse, error) {
	appointment, doctor, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return reshape(appointment, doctor), nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.AppointmentResponse, error) {
	appointment, doctor, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return reshape(appointment, doctor), nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func reshape(appointment *model.Appointment, doctor *model.Doctor) *model.AppointmentResponse {
	return &model.AppointmentResponse{
		ID:     appointment.ID,
		Date:   appointment.Date,
		Time:   appointment.Time,
		Status: appointment.Status,
		Doctor: doctor.Summary(),
	}
}
