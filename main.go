package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aircnc/config"
	"aircnc/database"
	bookingRepoPkg "aircnc/database/repository/booking"
	roomRepoPkg "aircnc/database/repository/room"
	userRepoPkg "aircnc/database/repository/user"
	"aircnc/handlers"
	"aircnc/middleware"
	"aircnc/routes"
	"aircnc/services/auth"
	"aircnc/services/booking"
	"aircnc/services/notification"
	"aircnc/services/payment"
	"aircnc/services/room"
	"aircnc/services/user"
	"aircnc/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	mongoClient, err := database.Connect(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Close(context.Background(), mongoClient); err != nil {
			logger.Sugar().Errorf("main: failed to close MongoDB client: %v", err)
		}
	}()

	cacheClient, err := utils.NewCacheClient()
	if err != nil {
		// The cache is an optimization; the server runs without it.
		logger.Sugar().Warnf("main: redis unavailable, room cache disabled: %v", err)
		cacheClient = nil
	} else {
		defer cacheClient.Close()
	}

	utils.StartHealthMonitor(cacheClient, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(mongoClient, config.AppConfig.DatabaseName)
	roomRepo := roomRepoPkg.NewMongoRoomRepo(mongoClient, config.AppConfig.DatabaseName)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(mongoClient, config.AppConfig.DatabaseName)

	// services.
	tokenService := auth.NewJWTTokenService(config.AppConfig.JWTSecret)
	paymentBroker := payment.NewStripeBroker(config.AppConfig.StripeSecretKey)
	dispatcher := notification.NewSMTPDispatcher(notification.SMTPConfig{
		Host:     config.AppConfig.SMTPHost,
		Port:     config.AppConfig.SMTPPort,
		Username: config.AppConfig.SMTPUsername,
		Password: config.AppConfig.SMTPPassword,
		From:     config.AppConfig.EmailFrom,
	}, logger)

	userService := &user.DefaultUserService{Repo: userRepo}
	roomService := &room.DefaultRoomService{
		Repo:   roomRepo,
		Cache:  cacheClient,
		Logger: logger,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		Rooms:      roomService,
		Dispatcher: dispatcher,
		Logger:     logger,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Tokens:   tokenService,
		Auth:     handlers.NewAuthHandler(tokenService),
		Payments: handlers.NewPaymentHandler(paymentBroker),
		Users:    handlers.NewUserHandler(userService),
		Rooms:    handlers.NewRoomHandler(roomService),
		Bookings: handlers.NewBookingHandler(bookingService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
