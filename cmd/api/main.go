package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/medibook/booking-api/config"
	"github.com/medibook/booking-api/internal/handler"
	appointmentHandler "github.com/medibook/booking-api/internal/handler/appointment"
	doctorHandler "github.com/medibook/booking-api/internal/handler/doctor"
	uploadHandler "github.com/medibook/booking-api/internal/handler/upload"
	userHandler "github.com/medibook/booking-api/internal/handler/user"
	"github.com/medibook/booking-api/internal/repository/postgres"
	"github.com/medibook/booking-api/internal/router"
	appointmentService "github.com/medibook/booking-api/internal/service/appointment"
	doctorService "github.com/medibook/booking-api/internal/service/doctor"
	userService "github.com/medibook/booking-api/internal/service/user"
	"github.com/medibook/booking-api/pkg/logger"
	"github.com/medibook/booking-api/pkg/metrics"
)

func main() {
	godotenv.Load()
	logger.Setup("booking-api")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("failed to create upload directory")
	}

	base := postgres.NewBaseRepository(db)
	userRepo := postgres.NewUserRepository(base)
	doctorRepo := postgres.NewDoctorRepository(base)
	appointmentRepo := postgres.NewAppointmentRepository(base)

	userSvc := userService.NewService(userRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)

	httpMetrics := metrics.NewHTTPMetrics("booking_api")

	r := router.NewRouter(
		handler.NewHandler(db),
		cfg.Upload.Dir,
		httpMetrics,
		userHandler.NewHandler(userSvc),
		doctorHandler.NewHandler(doctorSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		uploadHandler.NewHandler(cfg.Upload),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
