package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/medibook/booking-api/internal/model"
	"github.com/medibook/booking-api/internal/repository"
	"github.com/medibook/booking-api/internal/service/appointment"
)

var _ appointment.AppointmentService = (*mockAppointmentService)(nil)

type mockAppointmentService struct {
	ListFunc   func(ctx context.Context, userID uuid.UUID) ([]*model.AppointmentWithDoctor, error)
	CreateFunc func(ctx context.Context, req *model.CreateAppointmentRequest) (*model.AppointmentResponse, error)
	UpdateFunc func(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.AppointmentResponse, error)
	DeleteFunc func(ctx context.Context, id string) error

	ListCallCount int
}

func (m *mockAppointmentService) ListAppointments(ctx context.Context, userID uuid.UUID) ([]*model.AppointmentWithDoctor, error) {
	m.ListCallCount++
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, errors.New("ListFunc not implemented in mock")
}

func (m *mockAppointmentService) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.AppointmentResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, errors.New("CreateFunc not implemented in mock")
}

func (m *mockAppointmentService) UpdateAppointment(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.AppointmentResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, errors.New("UpdateFunc not implemented in mock")
}

func (m *mockAppointmentService) DeleteAppointment(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

func setupRouter(svc appointment.AppointmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api"))
	return engine
}

func seededDoctorSummary() model.DoctorSummary {
	url := "https://placehold.co/100x100/4CAF50/FFFFFF?text=SJ"
	return model.DoctorSummary{
		ID:            uuid.MustParse("12345678-1234-1234-1234-123456789abc"),
		Name:          "Dr. Sarah Johnson",
		Specialty:     "Cardiologist",
		ImageURL:      &url,
		Rating:        4.8,
		Experience:    "10 years",
		Bio:           "Dr. Johnson is a highly experienced cardiologist dedicated to heart health.",
		AvailableTime: "Mon, Wed, Fri (9 AM - 5 PM)",
	}
}

func TestListAppointments_InvalidUserID(t *testing.T) {
	svc := &mockAppointmentService{}

	// Dash-less hex, braced and URN forms parse as UUIDs but are not
	// canonical, so they must be rejected too.
	for _, id := range []string{
		"abc",
		"123456781234123412341234567890ab",
		"{12345678-1234-1234-1234-123456789abc}",
		"urn:uuid:12345678-1234-1234-1234-123456789abc",
		"12345678-1234-1234-1234-123456789abg",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/appointments/"+id, nil)
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
	}

	// No query may be issued for a malformed id.
	assert.Zero(t, svc.ListCallCount)
}

func TestListAppointments_UppercaseUUIDAccepted(t *testing.T) {
	svc := &mockAppointmentService{
		ListFunc: func(ctx context.Context, userID uuid.UUID) ([]*model.AppointmentWithDoctor, error) {
			return []*model.AppointmentWithDoctor{}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/12345678-1234-1234-1234-123456789ABC", nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAppointments_NestsDoctorWithCamelCaseKeys(t *testing.T) {
	userID := uuid.New()
	doctor := seededDoctorSummary()

	svc := &mockAppointmentService{
		ListFunc: func(ctx context.Context, id uuid.UUID) ([]*model.AppointmentWithDoctor, error) {
			assert.Equal(t, userID, id)
			return []*model.AppointmentWithDoctor{
				{
					Appointment: model.Appointment{
						ID:       uuid.New(),
						UserID:   userID,
						DoctorID: doctor.ID,
						Date:     time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
						Time:     "10:00 AM",
						Status:   "Upcoming",
					},
					Doctor: doctor,
				},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/"+userID.String(), nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var appointments []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &appointments))
	assert.Len(t, appointments, 1)

	nested, ok := appointments[0]["doctor"].(map[string]interface{})
	assert.True(t, ok, "doctor must be a nested object")
	assert.Equal(t, *doctor.ImageURL, nested["imageUrl"])
	assert.Equal(t, doctor.AvailableTime, nested["availableTime"])
	assert.NotContains(t, nested, "image_url")
	assert.NotContains(t, nested, "available_time")
}

func TestCreateAppointment(t *testing.T) {
	doctor := seededDoctorSummary()

	svc := &mockAppointmentService{
		CreateFunc: func(ctx context.Context, req *model.CreateAppointmentRequest) (*model.AppointmentResponse, error) {
			assert.Equal(t, doctor.ID.String(), req.DoctorID)
			return &model.AppointmentResponse{
				ID:     uuid.New(),
				Date:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
				Time:   req.Time,
				Status: "Upcoming",
				Doctor: doctor,
			}, nil
		},
	}

	body := bytes.NewBufferString(`{
		"userId": "d034237d-1c3f-4e1b-8b0d-6e01d67e8c3b",
		"doctorId": "12345678-1234-1234-1234-123456789abc",
		"date": "2025-10-01",
		"time": "10:00 AM"
	}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", body)
	req.Header.Set("Content-Type", "application/json")
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "10:00 AM", resp["time"])
	assert.Equal(t, "Upcoming", resp["status"])
	assert.Contains(t, resp["doctor"], "availableTime")
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	svc := &mockAppointmentService{
		UpdateFunc: func(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.AppointmentResponse, error) {
			return nil, repository.ErrNotFound
		},
	}

	body := bytes.NewBufferString(`{"date": "2025-10-01", "time": "10:00 AM", "status": "Completed"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/appointments/"+uuid.New().String(), body)
	req.Header.Set("Content-Type", "application/json")
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Appointment not found"}`, w.Body.String())
}

func TestDeleteAppointment(t *testing.T) {
	svc := &mockAppointmentService{
		DeleteFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/appointments/"+uuid.New().String(), nil)
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
