package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medibook/booking-api/internal/model"
	"github.com/medibook/booking-api/internal/repository"
)

var _ repository.DoctorRepository = (*mockDoctorRepository)(nil)

type mockDoctorRepository struct {
	ListFunc            func(ctx context.Context, specialty string) ([]*model.Doctor, error)
	GetFunc             func(ctx context.Context, id string) (*model.Doctor, error)
	ListSpecialtiesFunc func(ctx context.Context) ([]string, error)
}

func (m *mockDoctorRepository) List(ctx context.Context, specialty string) ([]*model.Doctor, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, specialty)
	}
	return nil, errors.New("ListFunc not implemented in mock")
}

func (m *mockDoctorRepository) Get(ctx context.Context, id string) (*model.Doctor, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not implemented in mock")
}

func (m *mockDoctorRepository) ListSpecialties(ctx context.Context) ([]string, error) {
	if m.ListSpecialtiesFunc != nil {
		return m.ListSpecialtiesFunc(ctx)
	}
	return nil, errors.New("ListSpecialtiesFunc not implemented in mock")
}

func TestListDoctors_PassesSpecialtyFilter(t *testing.T) {
	var gotSpecialty string
	repo := &mockDoctorRepository{
		ListFunc: func(ctx context.Context, specialty string) ([]*model.Doctor, error) {
			gotSpecialty = specialty
			return []*model.Doctor{}, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.ListDoctors(context.Background(), "Cardiologist")

	assert.NoError(t, err)
	assert.Equal(t, "Cardiologist", gotSpecialty)
}

func TestGetDoctor_NotFound(t *testing.T) {
	repo := &mockDoctorRepository{
		GetFunc: func(ctx context.Context, id string) (*model.Doctor, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewService(repo)

	d, err := svc.GetDoctor(context.Background(), "no-such-id")

	assert.Nil(t, d)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListSpecialties(t *testing.T) {
	repo := &mockDoctorRepository{
		ListSpecialtiesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"Cardiologist", "Pediatrician"}, nil
		},
	}
	svc := NewService(repo)

	specialties, err := svc.ListSpecialties(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Cardiologist", "Pediatrician"}, specialties)
}
