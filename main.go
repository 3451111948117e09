package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/asapgetaway/travel-booking/config"
	"github.com/asapgetaway/travel-booking/internal/handler"
	"github.com/asapgetaway/travel-booking/internal/middleware"
	"github.com/asapgetaway/travel-booking/internal/notification"
	"github.com/asapgetaway/travel-booking/internal/reminder"
	"github.com/asapgetaway/travel-booking/internal/repository"
	"github.com/asapgetaway/travel-booking/internal/service"
	"github.com/asapgetaway/travel-booking/pkg/database"
	"github.com/asapgetaway/travel-booking/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: notification jobs for the mail worker. The service
	// still runs without it; sends just degrade to log-and-skip.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("RabbitMQ unavailable, notifications disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}
	notifier := notification.NewRabbitNotifier(publisher)

	// Repositories
	tripRepo := repository.NewTripRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	waitingRepo := repository.NewWaitingListRepository(db)
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)

	// Services
	waitingSvc := service.NewWaitingListService(waitingRepo, tripRepo, userRepo, notifier)
	bookingSvc := service.NewBookingService(bookingRepo, tripRepo, userRepo, waitingSvc, notifier)
	tripSvc := service.NewTripService(tripRepo, bookingRepo)
	reviewSvc := service.NewReviewService(reviewRepo, tripRepo)
	wishlistSvc := service.NewWishlistService(wishlistRepo, tripRepo)

	// Daily reminder sweep
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go reminder.NewSweeper(bookingRepo, notifier).Run(ctx)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "travel-booking"})
	})

	handler.NewTripHandler(tripSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewWaitingListHandler(waitingSvc).RegisterRoutes(e)
	handler.NewReviewHandler(reviewSvc).RegisterRoutes(e)
	handler.NewWishlistHandler(wishlistSvc).RegisterRoutes(e)

	log.Printf("Travel Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
