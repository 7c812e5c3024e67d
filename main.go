package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/techentia-work/vtcc-australia/config"
	"github.com/techentia-work/vtcc-australia/cron"
	bookingRepo "github.com/techentia-work/vtcc-australia/database/repository/booking"
	"github.com/techentia-work/vtcc-australia/handlers"
	"github.com/techentia-work/vtcc-australia/middleware"
	"github.com/techentia-work/vtcc-australia/routes"
	"github.com/techentia-work/vtcc-australia/services/booking"
	"github.com/techentia-work/vtcc-australia/services/notification"
	"github.com/techentia-work/vtcc-australia/services/payment"
	"github.com/techentia-work/vtcc-australia/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitLockClient()

	// Booking store.
	repo, err := bookingRepo.NewSheetsRepo(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking sheet repository: %v", err)
	}

	// Payment gateway.
	gateway := payment.NewRazorpayGateway(
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
	)

	// Notifications: enqueue on the request path, deliver in the mail worker.
	notifier := notification.NewQueueNotifier()
	cron.InitMailWorker(notification.NewSMTPNotifier())

	availabilityEngine := &booking.AvailabilityEngine{
		Repo:     repo,
		FailMode: config.AppConfig.AvailabilityFailMode,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:         repo,
		Availability: availabilityEngine,
		Gateway:      gateway,
		Notifier:     notifier,
		Locker:       booking.NewRedisSlotLocker(utils.GetLockClient()),
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, bookingHandler)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetLockClient()},
		func(ctx context.Context) error {
			_, err := repo.ListAll(ctx)
			return err
		},
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := notifier.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close mail queue: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
