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
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	cancelBookingHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/create_booking"
	createGuestHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/create_guest"
	getBookingHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/get_booking"
	getGuestHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/get_guest"
	getGuestStatsHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/get_guest_stats"
	getUsageHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/get_usage"
	listBookingsHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/list_bookings"
	listCartsHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/list_carts"
	listGuestsHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/list_guests"
	listOffersHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/list_offers"
	listStaffHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/list_staff"
	redeemOfferHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/redeem_offer"
	sendCartReminderHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/send_cart_reminder"
	updateBookingStatusHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/update_booking_status"
	updateCartHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/update_cart"
	updatePaymentStatusHandler "github.com/m04kA/RBM-DashboardService/internal/api/handlers/update_payment_status"
	"github.com/m04kA/RBM-DashboardService/internal/api/middleware"
	"github.com/m04kA/RBM-DashboardService/internal/config"
	"github.com/m04kA/RBM-DashboardService/internal/filterengine"
	"github.com/m04kA/RBM-DashboardService/internal/infra/cache"
	bookingRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/booking"
	cartRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/cart"
	guestRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/guest"
	offerRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/offer"
	staffRepo "github.com/m04kA/RBM-DashboardService/internal/infra/storage/staff"
	franchiseServiceClient "github.com/m04kA/RBM-DashboardService/internal/integrations/franchiseservice"
	notifyServiceClient "github.com/m04kA/RBM-DashboardService/internal/integrations/notifyservice"
	"github.com/m04kA/RBM-DashboardService/internal/sampledata"
	bookingsService "github.com/m04kA/RBM-DashboardService/internal/service/bookings"
	cartsService "github.com/m04kA/RBM-DashboardService/internal/service/carts"
	guestsService "github.com/m04kA/RBM-DashboardService/internal/service/guests"
	offersService "github.com/m04kA/RBM-DashboardService/internal/service/offers"
	staffService "github.com/m04kA/RBM-DashboardService/internal/service/staff"
	"github.com/m04kA/RBM-DashboardService/internal/usage"
	createBookingUC "github.com/m04kA/RBM-DashboardService/internal/usecase/create_booking"
	updatePaymentStatusUC "github.com/m04kA/RBM-DashboardService/internal/usecase/update_payment_status"
	"github.com/m04kA/RBM-DashboardService/pkg/dbmetrics"
	"github.com/m04kA/RBM-DashboardService/pkg/logger"
	"github.com/m04kA/RBM-DashboardService/pkg/metrics"
	"github.com/m04kA/RBM-DashboardService/pkg/simpletxmanager"
	"github.com/m04kA/RBM-DashboardService/pkg/txmanager"
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

	log.Info("Starting RBM-DashboardService...")
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

	// Инициализируем Redis кэш статистики (если включен)
	var (
		guestStatsCache guestsService.StatsCache
		offerStatsCache offersService.StatsCache
	)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		statsCache := cache.NewStatsCache(redisClient, time.Duration(cfg.Redis.StatsTTL)*time.Second)
		guestStatsCache = statsCache
		offerStatsCache = statsCache
		log.Info("Redis stats cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.StatsTTL)
	} else {
		log.Info("Redis stats cache disabled, stats are computed on every request")
	}

	// Инициализируем интеграционных клиентов
	franchiseClient := franchiseServiceClient.NewClient(
		cfg.FranchiseService.URL,
		time.Duration(cfg.FranchiseService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (FranchiseService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.FranchiseService.URL, cfg.FranchiseService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		guestRepository   *guestRepo.Repository
		bookingRepository *bookingRepo.Repository
		cartRepository    *cartRepo.Repository
		staffRepository   *staffRepo.Repository
		offerRepository   *offerRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		guestRepository = guestRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		cartRepository = cartRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		offerRepository = offerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		guestRepository = guestRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		cartRepository = cartRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		offerRepository = offerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &filterengine.RealTimeProvider{}

	// Инициализируем счетчик использования API
	usageTracker := usage.NewTracker(cfg.Usage.Limit)
	log.Info("Usage tracker initialized (limit=%d)", cfg.Usage.Limit)

	// Инициализируем сервисы
	guestSvc := guestsService.NewService(
		guestRepository,
		guestStatsCache,
		sampledata.Guests,
		timeProvider,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		timeProvider,
		log,
	)
	cartSvc := cartsService.NewService(
		cartRepository,
		notifyClient,
		txMgr,
		timeProvider,
		log,
	)
	staffSvc := staffService.NewService(staffRepository, log)
	offerSvc := offersService.NewService(
		offerRepository,
		guestRepository,
		offerStatsCache,
		timeProvider,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		franchiseClient,
		txMgr,
		log,
	)
	updatePaymentStatusUseCase := updatePaymentStatusUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listGuests := listGuestsHandler.NewHandler(guestSvc, log)
	createGuest := createGuestHandler.NewHandler(guestSvc, log)
	getGuest := getGuestHandler.NewHandler(guestSvc, log)
	getGuestStats := getGuestStatsHandler.NewHandler(guestSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(updatePaymentStatusUseCase, log)
	listCarts := listCartsHandler.NewHandler(cartSvc, log)
	sendCartReminder := sendCartReminderHandler.NewHandler(cartSvc, log)
	updateCart := updateCartHandler.NewHandler(cartSvc, log)
	listStaff := listStaffHandler.NewHandler(staffSvc, log)
	listOffers := listOffersHandler.NewHandler(offerSvc, log)
	redeemOffer := redeemOfferHandler.NewHandler(offerSvc, log)
	getUsage := getUsageHandler.NewHandler(usageTracker, log)

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

	// Каждый именованный роут учитывается в счетчике использования
	api.Use(middleware.Usage(usageTracker))

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Снимок счетчика использования API
	api.HandleFunc("/usage", getUsage.Handle).Methods(http.MethodGet).Name("get_usage")

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Гости ---
	// Статистика по гостям (регистрируется до /guests/{guestId})
	protected.HandleFunc("/guests/stats", getGuestStats.Handle).Methods(http.MethodGet).Name("get_guest_stats")

	// Список гостей с фильтрацией
	protected.HandleFunc("/guests", listGuests.Handle).Methods(http.MethodGet).Name("list_guests")

	// Создание гостя
	protected.HandleFunc("/guests", createGuest.Handle).Methods(http.MethodPost).Name("create_guest")

	// Получение гостя по ID
	protected.HandleFunc("/guests/{guestId}", getGuest.Handle).Methods(http.MethodGet).Name("get_guest")

	// Погашение оффера гостя
	protected.HandleFunc("/guests/{guestId}/offers/{offerId}/redeem",
		redeemOffer.Handle).Methods(http.MethodPost).Name("redeem_offer")

	// --- Бронирования ---
	// Список бронирований с фильтрацией
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet).Name("list_bookings")

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost).Name("create_booking")

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet).Name("get_booking")

	// Обновление статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status",
		updateBookingStatus.Handle).Methods(http.MethodPatch).Name("update_booking_status")

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel",
		cancelBooking.Handle).Methods(http.MethodPatch).Name("cancel_booking")

	// Обновление статуса оплаты депозита
	protected.HandleFunc("/bookings/{bookingId}/payment",
		updatePaymentStatus.Handle).Methods(http.MethodPatch).Name("update_payment_status")

	// --- Брошенные корзины ---
	// Список брошенных корзин с фильтрацией
	protected.HandleFunc("/carts", listCarts.Handle).Methods(http.MethodGet).Name("list_carts")

	// Отправка напоминания о незавершенном бронировании
	protected.HandleFunc("/carts/{cartId}/reminder",
		sendCartReminder.Handle).Methods(http.MethodPost).Name("send_cart_reminder")

	// Обновление корзины (исход напоминания, архивация, восстановление)
	protected.HandleFunc("/carts/{cartId}", updateCart.Handle).Methods(http.MethodPatch).Name("update_cart")

	// --- Франшизы ---
	// Сотрудники франшизы
	protected.HandleFunc("/franchises/{franchiseId}/staff",
		listStaff.Handle).Methods(http.MethodGet).Name("list_staff")

	// Промо-кампании франшизы
	protected.HandleFunc("/franchises/{franchiseId}/offers",
		listOffers.Handle).Methods(http.MethodGet).Name("list_offers")

	// CORS для браузерного дашборда
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowedHeaders: []string{"Content-Type", "X-User-ID"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
