package doctor

import (
	"context"
	"fmt"

	"github.com/medibook/booking-api/internal/model"
	"github.com/medibook/booking-api/internal/repository"
)

type DoctorService interface {
	ListDoctors(ctx context.Context, specialty string) ([]*model.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*model.Doctor, error)
	ListSpecialties(ctx context.Context) ([]string, error)
}

// Service exposes the read-only doctor directory. Doctors are seeded
// out of band; there is no write path.
type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDoctors(ctx context.Context, specialty string) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx, specialty)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListSpecialties(ctx context.Context) ([]string, error) {
	specialties, err := s.repo.ListSpecialties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	return specialties, nil
}
