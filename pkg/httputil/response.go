package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Error sends a JSON error body with the given status. Bodies carry
// only a client-facing message, never internal error detail.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// InternalError logs the full error server-side and returns a generic
// 500 body.
func InternalError(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	Error(c, http.StatusInternalServerError, "Internal server error")
}
