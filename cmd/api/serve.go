package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sangkips/innkeeper-api/internal/application/jobs"
	"github.com/sangkips/innkeeper-api/internal/application/service"
	"github.com/sangkips/innkeeper-api/internal/config"
	"github.com/sangkips/innkeeper-api/internal/infrastructure/cache"
	"github.com/sangkips/innkeeper-api/internal/infrastructure/repository"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/handler"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/middleware"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/routes"
	"github.com/sangkips/innkeeper-api/pkg/printer"
	"github.com/sangkips/innkeeper-api/pkg/utils"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(config.Load())
		},
	}
}

func serve(cfg *config.Config) error {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openAndMigrate(cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	// Redis is optional; rooms are read from the database when it is down
	rdb, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		log.Printf("Warning: room cache disabled: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	receiptPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		log.Printf("Warning: %v, printing disabled", err)
		receiptPrinter = printer.NewNullPrinter()
	}

	idempotencyRepo := repository.NewIdempotencyRepository(db)

	rateLimiter := middleware.NewPropertyRateLimiter(
		middleware.RateLimiterConfigFor(cfg.RateLimit.Requests, cfg.RateLimit.Duration),
	)
	defer rateLimiter.Stop()

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	router := routes.Setup(buildHandlers(db, rdb, receiptPrinter, jwtManager, cfg), &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
	})

	scheduler := jobs.NewScheduler()
	if err := scheduler.RegisterIdempotencyCleanup(cfg.Jobs.IdempotencyCleanupSpec, idempotencyRepo); err != nil {
		log.Printf("Warning: %v", err)
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scheduler.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}

func buildHandlers(
	db *gorm.DB,
	rdb *redis.Client,
	receiptPrinter printer.Printer,
	jwtManager *utils.JWTManager,
	cfg *config.Config,
) *routes.Handlers {
	// Initialize repositories
	propertyRepo := repository.NewPropertyRepository(db)
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	foodItemRepo := repository.NewFoodItemRepository(db)
	foodOrderRepo := repository.NewFoodOrderRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	settingsService := service.NewSettingsService(propertyRepo)
	roomService := service.NewRoomService(roomRepo, cache.NewRoomCache(rdb, cfg.Redis.RoomTTL))
	bookingService := service.NewBookingService(bookingRepo, propertyRepo, roomService)
	foodService := service.NewFoodService(foodItemRepo, foodOrderRepo, bookingService)
	revenueService := service.NewRevenueService(revenueRepo)
	receiptService := service.NewReceiptService(bookingService, propertyRepo, userRepo, receiptPrinter, cfg.Printer.CharWidth)

	return &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Settings: handler.NewSettingsHandler(settingsService),
		Room:     handler.NewRoomHandler(roomService),
		Booking:  handler.NewBookingHandler(bookingService),
		Food:     handler.NewFoodHandler(foodService),
		Revenue:  handler.NewRevenueHandler(revenueService),
		Receipt:  handler.NewReceiptHandler(receiptService),
	}
}
