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

	createBookingHandler "github.com/m04kA/SMC-BookingCalendar/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-BookingCalendar/internal/api/handlers/delete_booking"
	exportCalendarHandler "github.com/m04kA/SMC-BookingCalendar/internal/api/handlers/export_calendar"
	getBookingsHandler "github.com/m04kA/SMC-BookingCalendar/internal/api/handlers/get_bookings"
	getCalendarHandler "github.com/m04kA/SMC-BookingCalendar/internal/api/handlers/get_calendar"
	"github.com/m04kA/SMC-BookingCalendar/internal/api/handlers/health"
	logoutHandler "github.com/m04kA/SMC-BookingCalendar/internal/api/handlers/logout"
	stepCalendarHandler "github.com/m04kA/SMC-BookingCalendar/internal/api/handlers/step_calendar"
	updateBookingHandler "github.com/m04kA/SMC-BookingCalendar/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-BookingCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-BookingCalendar/internal/config"
	"github.com/m04kA/SMC-BookingCalendar/internal/infra/snapshot"
	bookingRepo "github.com/m04kA/SMC-BookingCalendar/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BookingCalendar/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BookingCalendar/internal/scheduler"
	bookingsService "github.com/m04kA/SMC-BookingCalendar/internal/service/bookings"
	"github.com/m04kA/SMC-BookingCalendar/internal/session"
	getCalendarUC "github.com/m04kA/SMC-BookingCalendar/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-BookingCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-BookingCalendar/pkg/logger"
	"github.com/m04kA/SMC-BookingCalendar/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("SMC_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BookingCalendar...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Invalid calendar timezone %q: %v", cfg.Calendar.Timezone, err)
	}

	// Коллектор создаётся всегда, наружу отдаётся только при metrics.enabled
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем источник бронирований
	var source bookingsService.BookingSource

	switch cfg.Source.Kind {
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			source = bookingRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			source = bookingRepo.NewRepository(db)
		}

	default:
		source = bookingapi.NewClient(
			cfg.BookingAPI.URL,
			time.Duration(cfg.BookingAPI.Timeout)*time.Second,
			cfg.BookingAPI.ServiceToken,
			log,
		)
		log.Info("Booking API client initialized (url=%s timeout=%ds)", cfg.BookingAPI.URL, cfg.BookingAPI.Timeout)
	}

	// Инициализируем сервисы
	store := snapshot.NewStore()
	bookingSvc := bookingsService.NewService(source, store, metricsCollector, log)
	sessions := session.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AdminRoles)

	// Первая загрузка. Ошибка не фатальна: запросы повторят загрузку сами
	if snap, err := bookingSvc.Refresh(context.Background()); err != nil {
		log.Warn("Initial booking load failed: %v", err)
	} else {
		log.Info("Initial booking load: generation=%d, bookings=%d", snap.Generation, len(snap.Bookings))
	}

	// Фоновое обновление
	var refreshJob *scheduler.Scheduler
	if cfg.Refresh.Enabled {
		refreshJob, err = scheduler.New(
			cfg.Refresh.Cron,
			time.Duration(cfg.Refresh.Timeout)*time.Second,
			bookingSvc,
			log,
		)
		if err != nil {
			log.Fatal("Failed to create refresh scheduler: %v", err)
		}
		refreshJob.Start()
		log.Info("Booking refresh scheduled: %s", cfg.Refresh.Cron)
	}

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(bookingSvc, metricsCollector, location, log)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	stepCalendar := stepCalendarHandler.NewHandler(getCalendarUseCase, log)
	exportCalendar := exportCalendarHandler.NewHandler(bookingSvc, cfg.Calendar.FeedName, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	logout := logoutHandler.NewHandler(sessions, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Bearer токен с ролью администратора)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessions, log))

	// --- Календарь ---
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/step", stepCalendar.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/calendar.ics", exportCalendar.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Сессия ---
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if refreshJob != nil {
		refreshJob.Stop(shutdownCtx)
		log.Info("Refresh scheduler stopped")
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
