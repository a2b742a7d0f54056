package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/config"
	v1 "github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/delivery/http/v1"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/usecase"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/logger"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/mailer"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/redis"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           Portfolio API
// @version         1.0
// @description     Backend for the portfolio website: contact form delivery, newsletter signups, content and health endpoints.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "env", cfg.Environment)

	// 3. Setup Redis (rate limit counters; API stays up without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	} else {
		defer redis.Close()
	}

	// 4. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 5. Setup Mail Delivery
	m := mailer.WithMetrics(mailer.FromConfig(cfg), registry)
	logger.Log.Info("Mail transport selected", "transport", m.Name())

	// 6. Setup UseCases
	validate := validator.New()
	mailTimeout := time.Duration(cfg.MailTimeoutSeconds) * time.Second
	contactUC := usecase.NewContactUsecase(m, cfg.ContactEmail, mailTimeout)
	newsletterUC := usecase.NewNewsletterUsecase(m, validate, cfg.ContactEmail, mailTimeout)
	healthUC := usecase.NewHealthUsecase(cfg.Environment, cfg.Version, func() map[string]string {
		services := map[string]string{"email": m.Name()}
		if redis.IsAvailable() {
			services["redis"] = "up"
		} else {
			services["redis"] = "unavailable"
		}
		return services
	})
	contentUC := usecase.NewContentUsecase()

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:    contactUC,
		NewsletterUC: newsletterUC,
		HealthUC:     healthUC,
		ContentUC:    contentUC,
		Config:       cfg,
		Metrics:      registry,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
