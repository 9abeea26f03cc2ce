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

	cancelReservationHandler "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers/get_availability"
	getCustomerReservationsHandler "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers/get_customer_reservations"
	getReservationHandler "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers/get_reservation"
	getSalonReservationsHandler "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers/get_salon_reservations"
	getScheduleHandler "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers/get_schedule"
	updateReservationStatusHandler "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers/update_reservation_status"
	updateScheduleHandler "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/handlers/update_schedule"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/api/middleware"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/config"
	reservationRepo "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/infra/storage/reservation"
	scheduleRepo "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/infra/storage/schedule"
	profileServiceClient "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/integrations/profileservice"
	reservationsService "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/service/reservations"
	scheduleService "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/service/schedule"
	admitReservationUC "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/usecase/admit_reservation"
	computeAvailabilityUC "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/usecase/compute_availability"
	updateScheduleUC "github.com/minhlunguyen/beauty-salon-management-api-sub001/internal/usecase/update_schedule"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/dbmetrics"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/logger"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/metrics"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/simpletxmanager"
	"github.com/minhlunguyen/beauty-salon-management-api-sub001/pkg/txmanager"
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

	log.Info("Starting salon scheduling service...")
	log.Info("Configuration loaded from config.toml")

	// Загружаем бизнес-таймзону расписаний
	location, err := time.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Scheduling.Timezone, err)
	}
	log.Info("Scheduling timezone: %s", cfg.Scheduling.Timezone)

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

	// Инициализируем клиент ProfileService
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		profileClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		profileClient,
		log,
	)

	// Инициализируем use cases
	admitReservationUseCase := admitReservationUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		profileClient,
		txMgr,
		admitReservationUC.Config{
			Location:         location,
			MinNoticeMinutes: cfg.Scheduling.MinNoticeMinutes,
		},
		log,
	)

	computeAvailabilityUseCase := computeAvailabilityUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		profileClient,
		computeAvailabilityUC.Config{
			Location:                  location,
			MaxRangeDays:              cfg.Scheduling.MaxRangeDays,
			MinNoticeMinutes:          cfg.Scheduling.MinNoticeMinutes,
			DefaultGranularityMinutes: cfg.Scheduling.DefaultGranularityMinutes,
		},
		log,
	)

	updateScheduleUseCase := updateScheduleUC.NewUseCase(
		scheduleRepository,
		profileClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(computeAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(admitReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	getCustomerReservations := getCustomerReservationsHandler.NewHandler(reservationsSvc, log)
	getSalonReservations := getSalonReservationsHandler.NewHandler(reservationsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(updateScheduleUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчет доступных слотов мастера
	api.HandleFunc("/practitioners/{practitionerId}/available-slots",
		getAvailability.Handle).Methods(http.MethodGet)

	// Получение расписания мастера
	api.HandleFunc("/practitioners/{practitionerId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Обновление статуса бронирования (для менеджеров)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/reservations", getCustomerReservations.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для менеджеров) ---
	// Список бронирований салона
	protected.HandleFunc("/salons/{salonId}/reservations", getSalonReservations.Handle).Methods(http.MethodGet)

	// Замена расписания мастера
	protected.HandleFunc("/practitioners/{practitionerId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

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
