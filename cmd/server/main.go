package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go-gin-event-booking/config"
	"go-gin-event-booking/internal/cache"
	"go-gin-event-booking/internal/database"
	"go-gin-event-booking/internal/handler"
	"go-gin-event-booking/internal/payment"
	"go-gin-event-booking/internal/queue"
	"go-gin-event-booking/internal/repository"
	"go-gin-event-booking/internal/service"
	"go-gin-event-booking/internal/worker"
	"go-gin-event-booking/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	defer logger.Sync()
	log := logger.WithComponent("server")

	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(&cfg.Database); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	// repositories / cache
	eventRepo := repository.NewEventRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	capacityManager := cache.NewCapacityManager(rdb)
	sessionStore := cache.NewSessionStore(rdb, cfg.Checkout.SessionTTL)
	confirmationStore := cache.NewConfirmationStore(rdb, cfg.Checkout.ConfirmationTTL)
	notificationFeed := cache.NewNotificationFeed(rdb)

	eventQueue, err := newBookingEventQueue(rdb, &cfg.Queue)
	if err != nil {
		log.Fatal("Failed to initialize queue", zap.Error(err))
	}

	// services
	catalogService := service.NewCatalogService(eventRepo, capacityManager)
	sessionService := service.NewSessionService(eventRepo, sessionStore)
	authorizer := payment.NewSimulatedAuthorizer(cfg.Checkout.AuthorizationDelay, cfg.Checkout.SuccessRate)
	checkoutService := service.NewCheckoutService(
		catalogService, bookingRepo, sessionStore, confirmationStore,
		capacityManager, authorizer, eventQueue, cfg.Checkout,
	)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, capacityManager, eventQueue)
	reportService := service.NewReportService(eventRepo, bookingRepo, capacityManager)
	notificationService := service.NewNotificationService(notificationFeed)

	if cfg.Seed.OnStartup {
		if err := database.SeedCatalog(ctx, pool); err != nil {
			log.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	if err := catalogService.OpenAllForSale(ctx); err != nil {
		log.Fatal("Failed to open events for sale", zap.Error(err))
	}

	if err := worker.NewNotificationWorker(notificationService, eventQueue).Start(ctx); err != nil {
		log.Fatal("Failed to start notification worker", zap.Error(err))
	}

	router := gin.New()
	router.Use(handler.RequestLogger(), handler.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	handler.NewEventHandler(catalogService).RegisterRoutes(router)
	handler.NewSessionHandler(sessionService, checkoutService).RegisterRoutes(router)
	handler.NewBookingHandler(bookingService, checkoutService).RegisterRoutes(router)
	handler.NewReportHandler(reportService, notificationService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
}

func newBookingEventQueue(rdb *redis.Client, cfg *config.QueueConfig) (queue.BookingEventQueue, error) {
	if cfg.Driver == config.QueueDriverMemory {
		return queue.NewMemoryBookingEventQueue(1024, nil), nil
	}
	return queue.NewRedisStreamBookingEventQueue(rdb, cfg.ConsumerID, nil)
}
