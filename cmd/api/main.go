package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/telewatch/telewatch/internal/api/handlers"
	"github.com/telewatch/telewatch/internal/api/middleware"
	"github.com/telewatch/telewatch/internal/auth"
	"github.com/telewatch/telewatch/internal/config"
	"github.com/telewatch/telewatch/internal/pkg/logger"
	"github.com/telewatch/telewatch/internal/pkg/metrics"
	"github.com/telewatch/telewatch/internal/pkg/validator"
	"github.com/telewatch/telewatch/internal/repository/postgres"
	"github.com/telewatch/telewatch/internal/services"
	"github.com/telewatch/telewatch/internal/worker"
	"github.com/telewatch/telewatch/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := postgres.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, migrations.GetFS()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Repositories
	ruleRepo := postgres.NewAlertRuleRepository(db)
	eventRepo := postgres.NewAlertEventRepository(db)
	telemetryRepo := postgres.NewTelemetryRepository(db)

	// Services
	calc := services.NewMetricService(telemetryRepo, log)
	evalService := services.NewEvaluationService(calc, ruleRepo, eventRepo, cfg.Eval.Cooldown, log)
	ruleService := services.NewRuleService(ruleRepo, log)
	eventService := services.NewEventService(eventRepo, log)
	telemetryService := services.NewTelemetryService(telemetryRepo, log)

	// Background evaluation sweep
	var scheduler *worker.Scheduler
	if cfg.Eval.Schedule != "" {
		scheduler = worker.NewScheduler(evalService, ruleRepo, cfg.Eval.Schedule, log)
		if err := scheduler.Start(); err != nil {
			log.Fatalf("Failed to start evaluation scheduler: %v", err)
		}
	}

	// Handlers
	val := validator.New()
	ruleHandler := handlers.NewAlertRuleHandler(ruleService, log, val)
	eventHandler := handlers.NewAlertEventHandler(eventService, log)
	evalHandler := handlers.NewEvaluationHandler(evalService, log)
	telemetryHandler := handlers.NewTelemetryHandler(telemetryService, log, val)
	healthHandler := handlers.NewHealthHandler(db)

	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(metrics.Middleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", ruleHandler.List)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.RoleStaff))
				r.Post("/", ruleHandler.Create)
				r.Patch("/{id}", ruleHandler.Update)
				r.Delete("/{id}", ruleHandler.Delete)
			})
		})

		r.Get("/events", eventHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(auth.RoleStaff))
			r.Post("/evaluate", evalHandler.Run)
			r.Post("/telemetry", telemetryHandler.Ingest)
		})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	log.Info("Server stopped")
}
