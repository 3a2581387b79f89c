package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/medibook/booking-api/internal/model"
	"github.com/medibook/booking-api/internal/repository"
	"github.com/medibook/booking-api/internal/service/doctor"
)

var _ doctor.DoctorService = (*mockDoctorService)(nil)

type mockDoctorService struct {
	ListDoctorsFunc     func(ctx context.Context, specialty string) ([]*model.Doctor, error)
	GetDoctorFunc       func(ctx context.Context, id string) (*model.Doctor, error)
	ListSpecialtiesFunc func(ctx context.Context) ([]string, error)
}

func (m *mockDoctorService) ListDoctors(ctx context.Context, specialty string) ([]*model.Doctor, error) {
	if m.ListDoctorsFunc != nil {
		return m.ListDoctorsFunc(ctx, specialty)
	}
	return nil, errors.New("ListDoctorsFunc not implemented in mock")
}

func (m *mockDoctorService) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	if m.GetDoctorFunc != nil {
		return m.GetDoctorFunc(ctx, id)
	}
	return nil, errors.New("GetDoctorFunc not implemented in mock")
}

func (m *mockDoctorService) ListSpecialties(ctx context.Context) ([]string, error) {
	if m.ListSpecialtiesFunc != nil {
		return m.ListSpecialtiesFunc(ctx)
	}
	return nil, errors.New("ListSpecialtiesFunc not implemented in mock")
}

func setupRouter(svc doctor.DoctorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api"))
	return engine
}

func TestListDoctors_SpecialtyQueryPassedThrough(t *testing.T) {
	var gotSpecialty string
	svc := &mockDoctorService{
		ListDoctorsFunc: func(ctx context.Context, specialty string) ([]*model.Doctor, error) {
			gotSpecialty = specialty
			return []*model.Doctor{}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/doctors?specialty=Cardiologist", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cardiologist", gotSpecialty)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListDoctors_ReturnsRawColumnNames(t *testing.T) {
	url := "https://placehold.co/100x100/4CAF50/FFFFFF?text=SJ"
	svc := &mockDoctorService{
		ListDoctorsFunc: func(ctx context.Context, specialty string) ([]*model.Doctor, error) {
			return []*model.Doctor{
				{
					ID:            uuid.New(),
					Name:          "Dr. Sarah Johnson",
					Specialty:     "Cardiologist",
					ImageURL:      &url,
					Rating:        4.8,
					Experience:    "10 years",
					AvailableTime: "Mon, Wed, Fri (9 AM - 5 PM)",
				},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var doctors []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &doctors))
	assert.Len(t, doctors, 1)
	// Unlike the nested appointment payload, the directory keeps the
	// stored column names.
	assert.Contains(t, doctors[0], "image_url")
	assert.Contains(t, doctors[0], "available_time")
}

func TestGetDoctor_NotFound(t *testing.T) {
	svc := &mockDoctorService{
		GetDoctorFunc: func(ctx context.Context, id string) (*model.Doctor, error) {
			return nil, repository.ErrNotFound
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/doctors/"+uuid.New().String(), nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Doctor not found"}`, w.Body.String())
}

func TestListSpecialties(t *testing.T) {
	svc := &mockDoctorService{
		ListSpecialtiesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"Cardiologist", "Pediatrician", "Dermatologist"}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/specialties", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Cardiologist", "Pediatrician", "Dermatologist"]`, w.Body.String())
}
