package doctor

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibook/booking-api/internal/repository"
	"github.com/medibook/booking-api/internal/service/doctor"
	"github.com/medibook/booking-api/pkg/httputil"
)

type Handler struct {
	service doctor.DoctorService
}

func NewHandler(service doctor.DoctorService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context(), c.Query("specialty"))
	if err != nil {
		httputil.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	d, err := h.service.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httputil.Error(c, http.StatusNotFound, "Doctor not found")
			return
		}
		httputil.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *Handler) ListSpecialties(c *gin.Context) {
	specialties, err := h.service.ListSpecialties(c.Request.Context())
	if err != nil {
		httputil.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, specialties)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
	}
	r.GET("/specialties", h.ListSpecialties)
}
