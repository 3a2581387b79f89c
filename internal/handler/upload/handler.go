package upload

import (
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medibook/booking-api/config"
	"github.com/medibook/booking-api/pkg/httputil"
)

type Handler struct {
	cfg config.UploadConfig
}

func NewHandler(cfg config.UploadConfig) *Handler {
	return &Handler{cfg: cfg}
}

// UploadImage stores a single multipart file field named "image" and
// returns the URL it will be served from. The generated name embeds a
// millisecond timestamp and a random integer, so concurrent uploads
// cannot collide.
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	name := fmt.Sprintf("%d-%d%s",
		time.Now().UnixMilli(),
		rand.Intn(1_000_000_000),
		filepath.Ext(file.Filename),
	)

	if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.Dir, name)); err != nil {
		httputil.InternalError(c, fmt.Errorf("failed to store upload: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imageUrl": fmt.Sprintf("%s/uploads/%s", h.cfg.BaseURL, name),
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/upload", h.UploadImage)
}
