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

	cancelAppointmentHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/create_appointment"
	createStoreHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/create_store"
	createTherapistHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/create_therapist"
	deleteStoreHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/delete_store"
	deleteTherapistHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/delete_therapist"
	getAppointmentHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/get_available_slots"
	getCustomerAppointmentsHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/get_customer_appointments"
	getStoreHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/get_store"
	getTherapistHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/get_therapist"
	getTherapistAppointmentsHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/get_therapist_appointments"
	listStoresHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/list_stores"
	listTherapistsHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/list_therapists"
	setTherapistStatusHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/set_therapist_status"
	transitionAppointmentHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/transition_appointment"
	updateStoreHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/update_store"
	updateTherapistHandler "github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers/update_therapist"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/middleware"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/config"
	appointmentRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/appointment"
	storeRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/store"
	therapistRepo "github.com/Wu-ChengLiang/TMC-BookingService/internal/infra/storage/therapist"
	appointmentsService "github.com/Wu-ChengLiang/TMC-BookingService/internal/service/appointments"
	directoryService "github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory"
	createAppointmentUC "github.com/Wu-ChengLiang/TMC-BookingService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/Wu-ChengLiang/TMC-BookingService/internal/usecase/get_availability"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/dbmetrics"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/logger"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/metrics"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/simpletxmanager"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/txmanager"
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

	log.Info("Starting TMC-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		storeRepository       *storeRepo.Repository
		therapistRepository   *therapistRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		storeRepository = storeRepo.NewRepository(wrappedDB)
		therapistRepository = therapistRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		storeRepository = storeRepo.NewRepository(db)
		therapistRepository = therapistRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		cfg.Booking.CancellationLeadTimeMinutes,
		log,
	)
	directorySvc := directoryService.NewService(
		storeRepository,
		therapistRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		therapistRepository,
		storeRepository,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		appointmentRepository,
		therapistRepository,
		storeRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailabilityUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	transitionAppointment := transitionAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	getTherapistAppointments := getTherapistAppointmentsHandler.NewHandler(appointmentSvc, log)

	createStore := createStoreHandler.NewHandler(directorySvc, log)
	getStore := getStoreHandler.NewHandler(directorySvc, log)
	listStores := listStoresHandler.NewHandler(directorySvc, log)
	updateStore := updateStoreHandler.NewHandler(directorySvc, log)
	deleteStore := deleteStoreHandler.NewHandler(directorySvc, log)
	createTherapist := createTherapistHandler.NewHandler(directorySvc, log)
	getTherapist := getTherapistHandler.NewHandler(directorySvc, log)
	listTherapists := listTherapistsHandler.NewHandler(directorySvc, log)
	updateTherapist := updateTherapistHandler.NewHandler(directorySvc, log)
	setTherapistStatus := setTherapistStatusHandler.NewHandler(directorySvc, log)
	deleteTherapist := deleteTherapistHandler.NewHandler(directorySvc, log)

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

	// Доступные слоты мастера на дату
	api.HandleFunc("/therapists/{therapistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог салонов
	api.HandleFunc("/stores", listStores.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stores/{storeId}", getStore.Handle).Methods(http.MethodGet)

	// Мастера салона
	api.HandleFunc("/stores/{storeId}/therapists", listTherapists.Handle).Methods(http.MethodGet)
	api.HandleFunc("/therapists/{therapistId}", getTherapist.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Customer-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Перевод записи в новый статус
	protected.HandleFunc("/appointments/{appointmentId}/transition",
		transitionAppointment.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/customers/{customerId}/appointments",
		getCustomerAppointments.Handle).Methods(http.MethodGet)

	// Расписание мастера
	protected.HandleFunc("/therapists/{therapistId}/appointments",
		getTherapistAppointments.Handle).Methods(http.MethodGet)

	// --- Управление каталогом (для администраторов) ---
	protected.HandleFunc("/stores", createStore.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/stores/{storeId}", updateStore.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/stores/{storeId}", deleteStore.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/therapists", createTherapist.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/therapists/{therapistId}", updateTherapist.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/therapists/{therapistId}/status",
		setTherapistStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/therapists/{therapistId}", deleteTherapist.Handle).Methods(http.MethodDelete)

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
