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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/inkline/studio/internal/api/handlers/create_booking"
	createTransactionHandler "github.com/inkline/studio/internal/api/handlers/create_transaction"
	getAppointmentHandler "github.com/inkline/studio/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/inkline/studio/internal/api/handlers/get_availability"
	getDashboardHandler "github.com/inkline/studio/internal/api/handlers/get_dashboard"
	healthHandler "github.com/inkline/studio/internal/api/handlers/health"
	listAppointmentsHandler "github.com/inkline/studio/internal/api/handlers/list_appointments"
	listCustomersHandler "github.com/inkline/studio/internal/api/handlers/list_customers"
	listSubmissionsHandler "github.com/inkline/studio/internal/api/handlers/list_submissions"
	listTransactionsHandler "github.com/inkline/studio/internal/api/handlers/list_transactions"
	submitContactHandler "github.com/inkline/studio/internal/api/handlers/submit_contact"
	updateAppointmentStatusHandler "github.com/inkline/studio/internal/api/handlers/update_appointment_status"
	updateSubmissionStatusHandler "github.com/inkline/studio/internal/api/handlers/update_submission_status"
	uploadReferenceHandler "github.com/inkline/studio/internal/api/handlers/upload_reference"
	"github.com/inkline/studio/internal/api/middleware"
	"github.com/inkline/studio/internal/config"
	"github.com/inkline/studio/internal/infra/kvstore"
	appointmentRepo "github.com/inkline/studio/internal/infra/storage/appointment"
	submissionRepo "github.com/inkline/studio/internal/infra/storage/submission"
	transactionRepo "github.com/inkline/studio/internal/infra/storage/transaction"
	uploadRepo "github.com/inkline/studio/internal/infra/storage/upload"
	"github.com/inkline/studio/internal/integrations/mailer"
	"github.com/inkline/studio/internal/integrations/mediastore"
	appointmentsService "github.com/inkline/studio/internal/service/appointments"
	dashboardService "github.com/inkline/studio/internal/service/dashboard"
	submissionsService "github.com/inkline/studio/internal/service/submissions"
	transactionsService "github.com/inkline/studio/internal/service/transactions"
	createBookingUC "github.com/inkline/studio/internal/usecase/create_booking"
	getAvailabilityUC "github.com/inkline/studio/internal/usecase/get_availability"
	submitContactUC "github.com/inkline/studio/internal/usecase/submit_contact"
	uploadReferenceUC "github.com/inkline/studio/internal/usecase/upload_reference"
	"github.com/inkline/studio/pkg/dbmetrics"
	"github.com/inkline/studio/pkg/logger"
	"github.com/inkline/studio/pkg/metrics"
	"github.com/inkline/studio/pkg/ratelimit"
	"github.com/inkline/studio/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, logger.Options{
		JSON:   cfg.Logs.JSON || cfg.IsProduction(),
		Fields: map[string]interface{}{"service": cfg.App.Name},
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting %s (env=%s)...", cfg.App.Name, cfg.App.Env)

	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load studio timezone: %v", err)
	}
	minNotice := time.Duration(cfg.Booking.MinNoticeMinutes) * time.Minute

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обёртка БД: с метриками запросов и пула или без
	var wrappedDB *dbmetrics.DB
	if metricsCollector != nil {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB).WithMaxAttempts(cfg.Booking.MaxAttempts)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	submissionRepository := submissionRepo.NewRepository(wrappedDB)
	transactionRepository := transactionRepo.NewRepository(wrappedDB)
	uploadRepository := uploadRepo.NewRepository(wrappedDB)

	// Rate limiter: только в production и при настроенном Redis
	var (
		limiter *ratelimit.Limiter
		store   *kvstore.Store
	)
	if ratelimit.Enabled(cfg.App.Env, cfg.Redis.Addr) {
		store = kvstore.New(kvstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  time.Duration(cfg.Redis.Timeout) * time.Second,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := store.Ping(pingCtx); err != nil {
			// счётчики недоступны - limiter пропускает запросы (fail open)
			log.Warn("Redis is not reachable at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		limiter = ratelimit.New(store, log)
		log.Info("Rate limiting enabled (redis=%s)", cfg.Redis.Addr)
	} else {
		limiter = ratelimit.Disabled(log)
		log.Info("Rate limiting disabled (env=%s)", cfg.App.Env)
	}

	// Интеграции
	mailClient := mailer.NewClient(mailer.Config{
		Enabled:     cfg.Mail.Enabled,
		Host:        cfg.Mail.Host,
		Port:        cfg.Mail.Port,
		Username:    cfg.Mail.Username,
		Password:    cfg.Mail.Password,
		From:        cfg.Mail.From,
		StudioEmail: cfg.Mail.StudioEmail,
		Timeout:     time.Duration(cfg.Mail.Timeout) * time.Second,
	}, log)

	if metricsCollector != nil {
		limiter.WithRecorder(metricsCollector)
		mailClient.WithRecorder(metricsCollector)
	}

	mediaClient, err := mediastore.NewClient(cfg.Uploads.CloudinaryURL, cfg.Uploads.Folder)
	if err != nil {
		log.Fatal("Failed to initialize media store: %v", err)
	}
	log.Info("Integrations initialized (mail=%t, uploads=%t)", cfg.Mail.Enabled, mediaClient.Enabled())

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		appointmentRepository,
		location,
		minNotice,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		txMgr,
		mailClient,
		location,
		minNotice,
		log,
	)
	submitContactUseCase := submitContactUC.NewUseCase(
		submissionRepository,
		mailClient,
		log,
	)
	uploadReferenceUseCase := uploadReferenceUC.NewUseCase(
		uploadRepository,
		mediaClient,
		cfg.Uploads.MaxBytes,
		log,
	)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)
	submissionsSvc := submissionsService.NewService(submissionRepository, log)
	transactionsSvc := transactionsService.NewService(transactionRepository, location, log)
	dashboardSvc := dashboardService.NewService(
		appointmentRepository,
		submissionRepository,
		transactionRepository,
		location,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(wrappedDB, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	submitContact := submitContactHandler.NewHandler(submitContactUseCase, log)
	uploadReference := uploadReferenceHandler.NewHandler(uploadReferenceUseCase, cfg.Uploads.MaxBytes, log)

	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	listCustomers := listCustomersHandler.NewHandler(appointmentsSvc, log)
	listSubmissions := listSubmissionsHandler.NewHandler(submissionsSvc, log)
	updateSubmissionStatus := updateSubmissionStatusHandler.NewHandler(submissionsSvc, log)
	listTransactions := listTransactionsHandler.NewHandler(transactionsSvc, log)
	createTransaction := createTransactionHandler.NewHandler(transactionsSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)

	trustedProxies, err := middleware.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		log.Fatal("Failed to parse trusted proxies: %v", err)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RealIP(trustedProxies))
	r.Use(middleware.AccessLog(log))

	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Формы защищены rate limiter, у каждой своя политика
	api.Handle("/bookings", middleware.RateLimit(limiter, policy("booking", cfg.RateLimit.Booking), log)(
		http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)
	api.Handle("/contact", middleware.RateLimit(limiter, policy("contact", cfg.RateLimit.Contact), log)(
		http.HandlerFunc(submitContact.Handle))).Methods(http.MethodPost)
	api.Handle("/uploads", middleware.RateLimit(limiter, policy("upload", cfg.RateLimit.Upload), log)(
		http.HandlerFunc(uploadReference.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <admin token>)
	// ============================================================

	if cfg.Admin.Token != "" {
		admin := api.PathPrefix("/admin").Subrouter()
		admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

		// --- Записи ---
		admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
		admin.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
		admin.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

		// --- Клиенты и обращения ---
		admin.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
		admin.HandleFunc("/submissions", listSubmissions.Handle).Methods(http.MethodGet)
		admin.HandleFunc("/submissions/{id}/status", updateSubmissionStatus.Handle).Methods(http.MethodPatch)

		// --- Платежи ---
		admin.HandleFunc("/transactions", listTransactions.Handle).Methods(http.MethodGet)
		admin.HandleFunc("/transactions", createTransaction.Handle).Methods(http.MethodPost)

		admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	} else {
		log.Warn("Admin token is not configured, admin routes are disabled")
	}

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

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if store != nil {
		if err := store.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}

func policy(identifier string, p config.PolicyConfig) ratelimit.Policy {
	return ratelimit.Policy{
		Identifier: identifier,
		Limit:      p.Limit,
		Duration:   p.Window(),
	}
}
