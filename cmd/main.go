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

	createBookingHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/create_booking"
	createInvitationHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/create_invitation"
	getAvailableHoursHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/get_available_hours"
	getBookingHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/get_booking"
	getCalendarStatusHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/get_calendar_status"
	getHourAxisHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/get_hour_axis"
	getStaffBookingsHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/get_staff_bookings"
	oauthCallbackHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/oauth_callback"
	syncAllCalendarsHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/sync_all_calendars"
	syncCalendarHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/sync_calendar"
	updateBookingHandler "github.com/m04kA/BRB-SchedulingService/internal/api/handlers/update_booking"
	"github.com/m04kA/BRB-SchedulingService/internal/api/middleware"
	"github.com/m04kA/BRB-SchedulingService/internal/config"
	bookingRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/booking"
	credentialRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/credential"
	eventlinkRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/eventlink"
	hoursRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/hours"
	invitationRepo "github.com/m04kA/BRB-SchedulingService/internal/infra/storage/invitation"
	googleCalendarClient "github.com/m04kA/BRB-SchedulingService/internal/integrations/googlecalendar"
	bookingsService "github.com/m04kA/BRB-SchedulingService/internal/service/bookings"
	invitationsService "github.com/m04kA/BRB-SchedulingService/internal/service/invitations"
	createBookingUC "github.com/m04kA/BRB-SchedulingService/internal/usecase/create_booking"
	getAvailableHoursUC "github.com/m04kA/BRB-SchedulingService/internal/usecase/get_available_hours"
	getHourAxisUC "github.com/m04kA/BRB-SchedulingService/internal/usecase/get_hour_axis"
	syncAllCalendarsUC "github.com/m04kA/BRB-SchedulingService/internal/usecase/sync_all_calendars"
	syncCalendarUC "github.com/m04kA/BRB-SchedulingService/internal/usecase/sync_calendar"
	updateBookingUC "github.com/m04kA/BRB-SchedulingService/internal/usecase/update_booking"
	"github.com/m04kA/BRB-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/BRB-SchedulingService/pkg/logger"
	"github.com/m04kA/BRB-SchedulingService/pkg/metrics"
	"github.com/m04kA/BRB-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/BRB-SchedulingService/pkg/txmanager"
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

	log.Info("Starting BRB-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс бизнеса: источник истины для внешних событий
	location := time.Local
	if cfg.Calendar.TimeZone != "" {
		location, err = time.LoadLocation(cfg.Calendar.TimeZone)
		if err != nil {
			log.Fatal("Failed to load time zone %q: %v", cfg.Calendar.TimeZone, err)
		}
	}
	log.Info("Business time zone: %s", location.String())

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

	// Инициализируем клиент Google Calendar
	googleClient := googleCalendarClient.NewClient(
		cfg.Google.ClientID,
		cfg.Google.ClientSecret,
		cfg.Google.RedirectURL,
		time.Duration(cfg.Google.Timeout)*time.Second,
		log,
	)
	log.Info("Google Calendar client initialized (redirect=%s timeout=%ds)",
		cfg.Google.RedirectURL, cfg.Google.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		hoursRepository      *hoursRepo.Repository
		credentialRepository *credentialRepo.Repository
		eventlinkRepository  *eventlinkRepo.Repository
		invitationRepository *invitationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		hoursRepository = hoursRepo.NewRepository(wrappedDB)
		credentialRepository = credentialRepo.NewRepository(wrappedDB)
		eventlinkRepository = eventlinkRepo.NewRepository(wrappedDB)
		invitationRepository = invitationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		hoursRepository = hoursRepo.NewRepository(db)
		credentialRepository = credentialRepo.NewRepository(db)
		eventlinkRepository = eventlinkRepo.NewRepository(db)
		invitationRepository = invitationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	invitationSvc := invitationsService.NewService(
		invitationRepository,
		credentialRepository,
		googleClient,
		cfg.Invitations.FrontendURL,
		cfg.Invitations.TTLHours,
		&invitationsService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	var syncMetrics syncCalendarUC.Metrics = syncCalendarUC.NoopMetrics{}
	if cfg.Metrics.Enabled {
		syncMetrics = metricsCollector
	}

	syncCalendarUseCase := syncCalendarUC.New(
		credentialRepository,
		bookingRepository,
		eventlinkRepository,
		googleClient,
		syncMetrics,
		location,
		cfg.Calendar.SyncHorizonDays,
		cfg.Calendar.CalendarID,
		&syncCalendarUC.RealTimeProvider{},
		log,
	)
	syncAllCalendarsUseCase := syncAllCalendarsUC.New(credentialRepository, syncCalendarUseCase, log)
	createBookingUseCase := createBookingUC.New(
		bookingRepository,
		hoursRepository,
		txMgr,
		&createBookingUC.RealTimeProvider{},
		log,
	)
	updateBookingUseCase := updateBookingUC.New(
		bookingRepository,
		hoursRepository,
		txMgr,
		&updateBookingUC.RealTimeProvider{},
		log,
	)
	getAvailableHoursUseCase := getAvailableHoursUC.New(hoursRepository, log)
	getHourAxisUseCase := getHourAxisUC.New(hoursRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getStaffBookings := getStaffBookingsHandler.NewHandler(bookingSvc, log)
	getAvailableHours := getAvailableHoursHandler.NewHandler(getAvailableHoursUseCase, log)
	getHourAxis := getHourAxisHandler.NewHandler(getHourAxisUseCase, log)
	syncCalendar := syncCalendarHandler.NewHandler(syncCalendarUseCase, log)
	syncAllCalendars := syncAllCalendarsHandler.NewHandler(syncAllCalendarsUseCase, log)
	createInvitation := createInvitationHandler.NewHandler(invitationSvc, log)
	oauthCallback := oauthCallbackHandler.NewHandler(invitationSvc, cfg.Invitations.FrontendURL, log)
	getCalendarStatus := getCalendarStatusHandler.NewHandler(invitationSvc, log)

	// Фоновая чистка просроченных приглашений
	stopPurgeCh := make(chan struct{})
	go func() {
		interval := time.Duration(cfg.Invitations.PurgeIntervalMinutes) * time.Minute
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := invitationSvc.PurgeExpired(context.Background()); err != nil {
					log.Error("Invitation purge failed: %v", err)
				}
			case <-stopPurgeCh:
				return
			}
		}
	}()
	log.Info("Invitation purge worker started (interval=%dm)", cfg.Invitations.PurgeIntervalMinutes)

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

	// Доступные часы для записи на день
	api.HandleFunc("/schedule/available-hours", getAvailableHours.Handle).Methods(http.MethodGet)

	// Часовая ось для сетки расписания
	api.HandleFunc("/schedule/hour-axis", getHourAxis.Handle).Methods(http.MethodGet)

	// Возврат с OAuth-согласия Google (редирект приходит без наших заголовков)
	api.HandleFunc("/calendar/oauth/callback", oauthCallback.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перенос записи
	protected.HandleFunc("/bookings/{bookingId}/schedule", updateBooking.Handle).Methods(http.MethodPatch)

	// Записи мастера за период
	protected.HandleFunc("/staff/{staffId}/bookings", getStaffBookings.Handle).Methods(http.MethodGet)

	// --- Синхронизация календаря ---
	// Синхронизация одного мастера
	protected.HandleFunc("/calendar/sync", syncCalendar.Handle).Methods(http.MethodPost)

	// Синхронизация всех подключенных мастеров
	protected.HandleFunc("/calendar/sync-all", syncAllCalendars.Handle).Methods(http.MethodPost)

	// --- Подключение календаря ---
	// Выпуск приглашения на привязку
	protected.HandleFunc("/staff/{staffId}/calendar-invitations", createInvitation.Handle).Methods(http.MethodPost)

	// Статус подключения календаря мастера
	protected.HandleFunc("/staff/{staffId}/calendar-status", getCalendarStatus.Handle).Methods(http.MethodGet)

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

	// Останавливаем фоновые воркеры
	close(stopPurgeCh)
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
