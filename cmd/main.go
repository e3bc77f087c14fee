package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAvailableDatesHandler "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers/get_available_slots"
	getWorkingHoursHandler "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers/get_working_hours"
	previewTimeSlotsHandler "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers/preview_time_slots"
	resetWorkingHoursHandler "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers/reset_working_hours"
	updateWorkingHoursHandler "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/handlers/update_working_hours"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/api/middleware"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/config"
	appointmentRepo "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/infra/storage/appointment"
	managerRepo "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/infra/storage/manager"
	settingsRepo "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/infra/storage/settings"
	settingsService "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/service/settings"
	getAvailableDatesUC "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/BrunoDeVeronezi/ChamadosPro-sub008/internal/usecase/get_available_slots"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/dbmetrics"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/logger"
	"github.com/BrunoDeVeronezi/ChamadosPro-sub008/pkg/metrics"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting %s...", cfg.Metrics.ServiceName)
	log.Info("Configuration loaded from %s", configPath)

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories go through the metrics wrapper when metrics are on
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	settingsRepository := settingsRepo.NewRepository(executor)
	appointmentRepository := appointmentRepo.NewRepository(executor)
	managerRepository := managerRepo.NewRepository(executor)

	settingsSvc := settingsService.NewService(settingsRepository, managerRepository, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		metricsCollector,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		metricsCollector,
		cfg.Booking.MaxAvailableDatesRangeDays,
		log,
	)

	getWorkingHours := getWorkingHoursHandler.NewHandler(settingsSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(settingsSvc, log)
	resetWorkingHours := resetWorkingHoursHandler.NewHandler(settingsSvc, log)
	previewTimeSlots := previewTimeSlotsHandler.NewHandler(settingsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(metricsCollector.Registry, promhttp.HandlerOpts{})).
			Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/tenants/{tenantId}/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

	// Client-facing booking lookups are rate limited per IP
	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			TrustedProxies:    cfg.RateLimit.TrustedProxies,
			IdleTTL:           time.Duration(cfg.RateLimit.IdleTTLSeconds) * time.Second,
		}, log)
		if err != nil {
			log.Fatal("Failed to configure rate limiter: %v", err)
		}
		public.Use(limiter.Middleware)
		log.Info("Rate limiting enabled: %.2f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	public.HandleFunc("/tenants/{tenantId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	public.HandleFunc("/tenants/{tenantId}/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	public.HandleFunc("/working-hours/time-slots", previewTimeSlots.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/tenants/{tenantId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/tenants/{tenantId}/working-hours", resetWorkingHours.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
