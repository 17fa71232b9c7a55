// File: myadvisor/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myadvisor/config"
	"myadvisor/cron"
	"myadvisor/database"
	"myadvisor/database/repository"
	"myadvisor/handlers"
	"myadvisor/middleware"
	"myadvisor/routes"
	"myadvisor/services/admin"
	"myadvisor/services/advisor"
	"myadvisor/services/booking"
	"myadvisor/services/message"
	"myadvisor/services/review"
	"myadvisor/services/user"
	"myadvisor/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := repository.NewGormUserRepo()
	advisorRepo := repository.NewGormAdvisorRepo()
	appointmentRepo := repository.NewGormAppointmentRepo()
	reviewRepo := repository.NewGormReviewRepo()
	messageRepo := repository.NewGormMessageRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		AppointmentRepo: appointmentRepo,
		AdvisorRepo:     advisorRepo,
		SlotDuration:    time.Duration(config.AppConfig.SlotDurationMinutes) * time.Minute,
		MaxRangeDays:    config.AppConfig.MaxRangeDays,
	}
	advisorService := &advisor.DefaultAdvisorService{
		Repo:       advisorRepo,
		BookingSvc: bookingService,
	}
	reviewService := &review.DefaultReviewService{
		Repo:            reviewRepo,
		AppointmentRepo: appointmentRepo,
		AdvisorRepo:     advisorRepo,
	}
	messageService := &message.DefaultMessageService{
		Repo:     messageRepo,
		UserRepo: userRepo,
	}
	adminService := &admin.DefaultAdminService{
		UserRepo:        userRepo,
		AdvisorRepo:     advisorRepo,
		AppointmentRepo: appointmentRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		User:     handlers.NewUserHandler(userService),
		Advisor:  handlers.NewAdvisorHandler(advisorService, bookingService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Review:   handlers.NewReviewHandler(reviewService),
		Message:  handlers.NewMessageHandler(messageService),
		Admin:    handlers.NewAdminHandler(adminService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background sweep of past appointments.
	cron.InitSweepWorker(bookingService)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
