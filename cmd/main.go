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
	goredis "github.com/redis/go-redis/v9"

	createBookingHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/get_available_slots"
	getScheduleHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/get_schedule"
	getSupplierReservationsHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/get_supplier_reservations"
	loginHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/logout"
	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryBooking/internal/config"
	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	memoryCache "github.com/m04kA/SMC-DeliveryBooking/internal/infra/cache/memory"
	redisCache "github.com/m04kA/SMC-DeliveryBooking/internal/infra/cache/redis"
	"github.com/m04kA/SMC-DeliveryBooking/internal/infra/lock"
	credentialRepo "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/credential"
	managementRepo "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/management"
	reservationRepo "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/reservation"
	memorySheets "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/sheets/memory"
	postgresSheets "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/sheets/postgres"
	xlsxSheets "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/sheets/xlsx"
	"github.com/m04kA/SMC-DeliveryBooking/internal/integrations/attachment"
	"github.com/m04kA/SMC-DeliveryBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-DeliveryBooking/internal/service/notification"
	"github.com/m04kA/SMC-DeliveryBooking/internal/service/reservations"
	"github.com/m04kA/SMC-DeliveryBooking/internal/service/sessions"
	createBookingUC "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/get_available_slots"
	loginUC "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/login"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/logger"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/metrics"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/retry"
)

// Workbook общий интерфейс драйверов таблиц
type Workbook interface {
	ReadAll(ctx context.Context, sheet string) ([][]string, error)
	AppendRow(ctx context.Context, sheet string, row []string) error
	EnsureSheet(ctx context.Context, sheet string, header []string) error
}

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

	log.Info("Starting SMC-DeliveryBooking...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Метрики передаются в сервисы как интерфейсы, чтобы nil означал "без метрик"
	var (
		metricsCollector *metrics.Metrics
		storeMetrics     reservations.Metrics
		notifyMetrics    notification.Metrics
		sessionMetrics   sessions.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		storeMetrics = metricsCollector
		notifyMetrics = metricsCollector
		sessionMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Подключаем драйвер таблиц
	workbook, closeWorkbook := openWorkbook(ctx, cfg, log)
	defer closeWorkbook()

	// Redis нужен только для кэша или блокировки
	var redisClient *goredis.Client
	if cfg.Store.Cache == config.CacheDriverRedis || cfg.Store.Lock == config.LockRedis {
		redisClient, err = redisCache.NewClient(ctx, redisCache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Connected to redis at %s", cfg.Redis.Addr)
	}

	// Репозитории листов
	reservationRepository := reservationRepo.NewRepository(workbook, cfg.Store.ReservationsSheet)
	credentialRepository := credentialRepo.NewRepository(workbook, cfg.Store.CredentialsSheet)
	managementRepository := managementRepo.NewRepository(workbook, cfg.Store.ManagementSheet)

	if err := workbook.EnsureSheet(ctx, cfg.Store.ReservationsSheet, domain.ReservationsHeader); err != nil {
		log.Error("Failed to ensure sheet %s: %v", cfg.Store.ReservationsSheet, err)
	}
	if err := workbook.EnsureSheet(ctx, cfg.Store.CredentialsSheet, domain.CredentialsHeader); err != nil {
		log.Error("Failed to ensure sheet %s: %v", cfg.Store.CredentialsSheet, err)
	}
	if err := managementRepository.Ensure(ctx); err != nil {
		log.Error("Failed to ensure sheet %s: %v", cfg.Store.ManagementSheet, err)
	}

	// Кэш и блокировка записи
	cacheTTL := time.Duration(cfg.Store.CacheTTL) * time.Second
	var tableCache reservations.TableCache
	switch cfg.Store.Cache {
	case config.CacheDriverRedis:
		tableCache = redisCache.NewReservationCache(redisClient, cfg.Redis.KeyPrefix, cacheTTL)
	case config.CacheDriverMemory:
		tableCache = memoryCache.NewReservationCache(cacheTTL)
	}

	lockTimeout := time.Duration(cfg.Store.LockTimeout) * time.Second
	var locker reservations.Locker
	switch cfg.Store.Lock {
	case config.LockLocal:
		locker = lock.NewLocal()
	case config.LockRedis:
		locker = lock.NewRedis(redisClient, cfg.Redis.KeyPrefix, 2*lockTimeout)
	}
	log.Info("Reservation store: driver=%s, cache=%s (ttl=%s), lock=%s",
		cfg.Store.Driver, cfg.Store.Cache, cacheTTL, cfg.Store.Lock)

	// Инициализируем сервисы
	gateway := reservations.NewGateway(
		reservationRepository,
		tableCache,
		locker,
		reservations.Options{
			Retry: retry.Policy{
				MaxAttempts: cfg.Store.Retry.MaxAttempts,
				Backoff:     retry.Exponential(time.Duration(cfg.Store.Retry.BaseDelayMs) * time.Millisecond),
				Sleep:       retry.SleepContext,
			},
			SettleDelay: time.Duration(cfg.Store.SettleDelayMs) * time.Millisecond,
			LockTimeout: lockTimeout,
		},
		storeMetrics,
		log,
	)

	var fetcher notification.AttachmentFetcher
	if cfg.Attachment.Source != "" {
		fetcher = attachment.NewClient(
			cfg.Attachment.Source,
			cfg.Attachment.Name,
			time.Duration(cfg.Attachment.Timeout)*time.Second,
			log,
		)
		log.Info("Confirmation attachment source: %s", cfg.Attachment.Source)
	}

	mailClient := mailer.NewClient(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})
	notifier := notification.NewService(mailClient, fetcher, cfg.Mail.Subject, notifyMetrics, log)

	sessionStore := sessions.NewStore(time.Duration(cfg.Session.TTLMinutes)*time.Minute, sessionMetrics)

	// Инициализируем use cases
	timeProvider := &createBookingUC.RealTimeProvider{Location: location}

	loginUseCase := loginUC.NewUseCase(credentialRepository, sessionStore, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		gateway,
		sessionStore,
		timeProvider,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		gateway,
		notifier,
		sessionStore,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(loginUseCase, log)
	logout := logoutHandler.NewHandler(sessionStore, log)
	getSchedule := getScheduleHandler.NewHandler(log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getSupplierReservations := getSupplierReservationsHandler.NewHandler(gateway, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessionStore, log))

	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", getSupplierReservations.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Периодически удаляем истекшие сессии
	stopPurge := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := sessionStore.PurgeExpired(); n > 0 {
					log.Info("Purged %d expired sessions", n)
				}
			case <-stopPurge:
				return
			}
		}
	}()

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
	close(stopPurge)

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

// openWorkbook подключает выбранный драйвер таблиц и возвращает функцию закрытия
func openWorkbook(ctx context.Context, cfg *config.Config, log *logger.Logger) (Workbook, func()) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		wb := postgresSheets.NewWorkbook(db)
		if err := wb.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to create workbook schema: %v", err)
		}
		return wb, func() { _ = db.Close() }

	case config.StoreDriverMemory:
		log.Warn("Using in-memory workbook, reservations are lost on restart")
		return memorySheets.NewWorkbook(), func() {}

	default:
		wb, err := xlsxSheets.NewWorkbook(cfg.Store.XLSXPath)
		if err != nil {
			log.Fatal("Failed to open workbook %s: %v", cfg.Store.XLSXPath, err)
		}
		log.Info("Using workbook %s", cfg.Store.XLSXPath)
		return wb, func() {}
	}
}
