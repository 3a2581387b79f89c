package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medibook/booking-api/internal/handler"
	"github.com/medibook/booking-api/internal/middleware"
	"github.com/medibook/booking-api/pkg/metrics"
)

// Handler is implemented by every resource handler.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine    *gin.Engine
	health    *handler.Handler
	handlers  []Handler
	uploadDir string
}

func NewRouter(health *handler.Handler, uploadDir string, m *metrics.HTTPMetrics, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)
	if m != nil {
		engine.Use(m.Middleware())
	}

	return &Router{
		engine:    engine,
		health:    health,
		handlers:  handlers,
		uploadDir: uploadDir,
	}
}

func (r *Router) Setup() {
	r.engine.GET("/health/live", r.health.LivenessCheck)
	r.engine.GET("/health/ready", r.health.ReadinessCheck)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded images are served straight off local disk.
	r.engine.Static("/uploads", r.uploadDir)

	api := r.engine.Group("/api")
	for _, h := range r.handlers {
		h.RegisterRoutes(api)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
