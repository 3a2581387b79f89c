package appointment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medibook/booking-api/internal/model"
	"github.com/medibook/booking-api/internal/repository"
	"github.com/medibook/booking-api/internal/service/appointment"
	"github.com/medibook/booking-api/pkg/httputil"
)

type Handler struct {
	service appointment.AppointmentService
}

func NewHandler(service appointment.AppointmentService) *Handler {
	return &Handler{service: service}
}

// parseCanonicalUUID accepts only the canonical 8-4-4-4-12 text form,
// case-insensitive. uuid.Parse alone also takes braced, URN and
// dash-less inputs, so the length check matters.
func parseCanonicalUUID(s string) (uuid.UUID, bool) {
	if len(s) != 36 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ListAppointments returns every appointment for the user in the path,
// each joined with its doctor. The user id is validated before any
// query is issued.
func (h *Handler) ListAppointments(c *gin.Context) {
	userID, ok := parseCanonicalUUID(c.Param("id"))
	if !ok {
		httputil.Error(c, http.StatusBadRequest, "Invalid user ID format. Must be a valid UUID.")
		return
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), userID)
	if err != nil {
		httputil.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		httputil.InternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateAppointment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httputil.Error(c, http.StatusNotFound, "Appointment not found")
			return
		}
		httputil.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.service.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httputil.Error(c, http.StatusNotFound, "Appointment not found")
			return
		}
		httputil.InternalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		// The GET path parameter is a user id; gin requires one name
		// per segment, so it shares :id with update and delete.
		appointments.GET("/:id", h.ListAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}
