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

	cancelBookingHandler "github.com/rsmnv/RST-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/rsmnv/RST-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/rsmnv/RST-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/rsmnv/RST-BookingService/internal/api/handlers/get_booking"
	getPackageHandler "github.com/rsmnv/RST-BookingService/internal/api/handlers/get_package"
	getScheduleHandler "github.com/rsmnv/RST-BookingService/internal/api/handlers/get_schedule"
	listBookingsHandler "github.com/rsmnv/RST-BookingService/internal/api/handlers/list_bookings"
	listPackagesHandler "github.com/rsmnv/RST-BookingService/internal/api/handlers/list_packages"
	manageScheduleHandler "github.com/rsmnv/RST-BookingService/internal/api/handlers/manage_schedule"
	updateBookingStatusHandler "github.com/rsmnv/RST-BookingService/internal/api/handlers/update_booking_status"
	"github.com/rsmnv/RST-BookingService/internal/api/middleware"
	"github.com/rsmnv/RST-BookingService/internal/config"
	bookingRepo "github.com/rsmnv/RST-BookingService/internal/infra/storage/booking"
	packageRepo "github.com/rsmnv/RST-BookingService/internal/infra/storage/pkgcatalog"
	scheduleRepo "github.com/rsmnv/RST-BookingService/internal/infra/storage/schedule"
	bookingsService "github.com/rsmnv/RST-BookingService/internal/service/bookings"
	packagesService "github.com/rsmnv/RST-BookingService/internal/service/packages"
	scheduleService "github.com/rsmnv/RST-BookingService/internal/service/schedule"
	createBookingUC "github.com/rsmnv/RST-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/rsmnv/RST-BookingService/internal/usecase/get_availability"
	"github.com/rsmnv/RST-BookingService/migrations"
	"github.com/rsmnv/RST-BookingService/pkg/dbmetrics"
	"github.com/rsmnv/RST-BookingService/pkg/logger"
	"github.com/rsmnv/RST-BookingService/pkg/metrics"
	"github.com/rsmnv/RST-BookingService/pkg/simpletxmanager"
	"github.com/rsmnv/RST-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting RST-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Бизнес-таймзона: в ней интерпретируются даты, рабочие часы и блокировки
	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Business timezone: %s", cfg.Booking.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Применяем миграции
	if err := migrations.Up(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	schemaVersion, err := migrations.Version(context.Background(), db)
	if err != nil {
		log.Fatal("Failed to read schema version: %v", err)
	}
	log.Info("Database migrations applied (schema version %d)", schemaVersion)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		packageRepository  *packageRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		packageRepository = packageRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		packageRepository = packageRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	packagesSvc := packagesService.NewService(packageRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, location, log)

	// Инициализируем use cases
	timeProvider := &getAvailabilityUC.RealTimeProvider{}

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		packageRepository,
		timeProvider,
		location,
		cfg.Booking.SlotIntervalMinutes,
		cfg.Booking.BufferMinutes,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		packageRepository,
		txMgr,
		timeProvider,
		cfg.Booking.BufferMinutes,
		log,
	)

	// Инициализируем handlers
	listPackages := listPackagesHandler.NewHandler(packagesSvc, log)
	getPackage := getPackageHandler.NewHandler(packagesSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, location, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, location, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	manageSchedule := manageScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог пакетов
	api.HandleFunc("/packages", listPackages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages/{packageId}", getPackage.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Расписание ---
	admin.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule", manageSchedule.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
