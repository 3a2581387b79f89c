package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibook/booking-api/internal/model"
	"github.com/medibook/booking-api/internal/repository"
	"github.com/medibook/booking-api/internal/service/user"
	"github.com/medibook/booking-api/pkg/httputil"
)

// emailUnique is the constraint the storage layer reports when an
// email is already taken.
const emailUnique = "users_email_unique"

type Handler struct {
	service user.UserService
}

func NewHandler(service user.UserService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		httputil.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httputil.Error(c, http.StatusNotFound, "User not found")
			return
		}
		httputil.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req model.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		if repository.IsUniqueViolation(err, emailUnique) {
			httputil.Error(c, http.StatusConflict, "A user with this email already exists.")
			return
		}
		httputil.InternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var req model.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			httputil.Error(c, http.StatusNotFound, "User not found")
		case repository.IsUniqueViolation(err, emailUnique):
			httputil.Error(c, http.StatusConflict, "Email already in use by another user.")
		default:
			httputil.InternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httputil.Error(c, http.StatusNotFound, "User not found")
			return
		}
		httputil.InternalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}
