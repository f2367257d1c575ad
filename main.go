package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/cron"
	"voyago/database"
	bookingRepoPkg "voyago/database/repository/booking"
	productRepoPkg "voyago/database/repository/product"
	tripRepoPkg "voyago/database/repository/trip"
	"voyago/handlers"
	"voyago/routes"
	"voyago/services/bookings"
	"voyago/services/catalog"
	"voyago/services/tasks"
	"voyago/services/trip"
	"voyago/services/wizard"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	productRepo := productRepoPkg.NewMongoProductRepo()
	tripRepo := tripRepoPkg.NewMongoTripRepo()

	// async reminder pipeline.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	reminderScheduler := &tasks.AsynqReminderScheduler{Client: asynqClient}
	cron.InitReminderWorker(bookingRepo)

	// services.
	var paymentProcessor wizard.PaymentProcessor
	if config.AppConfig.StripeKey != "" {
		paymentProcessor = &wizard.StripePaymentProcessor{Logger: logger}
	} else {
		logger.Warn("no Stripe key configured, using simulated payments")
		paymentProcessor = &wizard.SimulatedPaymentProcessor{Logger: logger}
	}

	submitter := &wizard.DefaultBookingSubmitter{
		Bookings:  bookingRepo,
		Products:  productRepo,
		Payments:  paymentProcessor,
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	wizardService := &wizard.DefaultWizardService{
		Store:     wizard.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL),
		Inventory: &wizard.CatalogInventoryGateway{Products: productRepo},
		Submitter: submitter,
		Products:  productRepo,
		Logger:    logger,
		Currency:  config.AppConfig.Currency,
	}

	catalogService := &catalog.DefaultCatalogService{Repo: productRepo}
	tripService := &trip.DefaultTripService{Repo: tripRepo}
	bookingService := &bookings.DefaultBookingService{Repo: bookingRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Wizard:   handlers.NewWizardHandler(wizardService, logger),
		Catalog:  handlers.NewCatalogHandler(catalogService, logger),
		Trips:    handlers.NewTripHandler(tripService, logger),
		Bookings: handlers.NewBookingHandler(bookingService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
			logger.Sugar().Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for an interrupt signal for graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server exited cleanly")
}
