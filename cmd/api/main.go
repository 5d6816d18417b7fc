package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	nrecho "github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/sewamobil/sewamobil/internal/pkg/config"
	"github.com/sewamobil/sewamobil/internal/pkg/database"
	"github.com/sewamobil/sewamobil/internal/pkg/health"
	"github.com/sewamobil/sewamobil/internal/pkg/logger"
	"github.com/sewamobil/sewamobil/internal/pkg/middleware"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/internal/pkg/nats"
	nrpkg "github.com/sewamobil/sewamobil/internal/pkg/newrelic"

	authhandler "github.com/sewamobil/sewamobil/services/auth/handler/http"
	authrepo "github.com/sewamobil/sewamobil/services/auth/repository"
	authusecase "github.com/sewamobil/sewamobil/services/auth/usecase"
	bookinggateway "github.com/sewamobil/sewamobil/services/booking/gateway"
	bookinghandler "github.com/sewamobil/sewamobil/services/booking/handler/http"
	bookingrepo "github.com/sewamobil/sewamobil/services/booking/repository"
	bookingusecase "github.com/sewamobil/sewamobil/services/booking/usecase"
	couponhandler "github.com/sewamobil/sewamobil/services/coupon/handler/http"
	couponrepo "github.com/sewamobil/sewamobil/services/coupon/repository"
	couponusecase "github.com/sewamobil/sewamobil/services/coupon/usecase"
	fleethandler "github.com/sewamobil/sewamobil/services/fleet/handler/http"
	fleetrepo "github.com/sewamobil/sewamobil/services/fleet/repository"
	fleetusecase "github.com/sewamobil/sewamobil/services/fleet/usecase"
	overviewhandler "github.com/sewamobil/sewamobil/services/overview/handler/http"
	overviewrepo "github.com/sewamobil/sewamobil/services/overview/repository"
	overviewusecase "github.com/sewamobil/sewamobil/services/overview/usecase"
	paymentgateway "github.com/sewamobil/sewamobil/services/payment/gateway"
	paymenthandler "github.com/sewamobil/sewamobil/services/payment/handler/http"
	paymentrepo "github.com/sewamobil/sewamobil/services/payment/repository"
	paymentusecase "github.com/sewamobil/sewamobil/services/payment/usecase"
)

func main() {
	appName := "sewamobil-api"
	configPath := "config/api.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()
	validate := validator.New()

	// Repositories
	userRepo := authrepo.NewUserRepository(db)
	fleetRepository := fleetrepo.NewFleetRepository(db)
	couponRepository := couponrepo.NewCouponRepository(db)
	bookingRepository := bookingrepo.NewBookingRepository(db)
	paymentRepository := paymentrepo.NewPaymentRepository(db)
	overviewRepository := overviewrepo.NewOverviewRepository(db)

	// Gateways
	bookingGW := bookinggateway.NewBookingGW(natsClient)
	paymentEventGW := paymentgateway.NewPaymentEventGW(natsClient)
	midtransGW := paymentgateway.NewMidtransGW(configs.Midtrans)

	// Use cases
	authUC := authusecase.NewAuthUC(userRepo, configs.JWT, validate)
	fleetUC := fleetusecase.NewFleetUC(fleetRepository, redisClient, validate)
	couponUC := couponusecase.NewCouponUC(couponRepository, validate)
	bookingUC := bookingusecase.NewBookingUC(bookingRepository, fleetUC, couponUC, bookingGW, validate)
	paymentUC := paymentusecase.NewPaymentUC(paymentRepository, bookingUC, authUC,
		midtransGW, midtransGW, paymentEventGW, validate)
	overviewUC := overviewusecase.NewOverviewUC(overviewRepository)

	// Handlers
	authHandler := authhandler.NewAuthHandler(authUC)
	fleetHandler := fleethandler.NewFleetHandler(fleetUC)
	couponHandler := couponhandler.NewCouponHandler(couponUC)
	bookingHandler := bookinghandler.NewBookingHandler(bookingUC)
	paymentHandler := paymenthandler.NewPaymentHandler(paymentUC)
	overviewHandler := overviewhandler.NewOverviewHandler(overviewUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Middlewares (panic recovery first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Route gates
	authMW := middleware.JWTAuthMiddleware(configs.JWT)
	adminGate := middleware.RequireRoles(models.RoleAdmin, models.RoleStaff, models.RolePartner)

	// Health endpoints
	healthService := health.NewService()
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	// Service routes
	authHandler.RegisterRoutes(e, authMW)
	fleetHandler.RegisterRoutes(e, authMW, adminGate)
	couponHandler.RegisterRoutes(e, authMW, adminGate)
	bookingHandler.RegisterRoutes(e, authMW, adminGate)
	paymentHandler.RegisterRoutes(e, authMW)
	overviewHandler.RegisterRoutes(e, authMW, adminGate)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	if err := postgresClient.Close(); err != nil {
		zapLogger.Error("Error closing PostgreSQL connection", logger.Err(err))
	}
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}
	natsClient.Close()

	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
}
