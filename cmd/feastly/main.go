package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/feastly/feastly/config"
	"github.com/feastly/feastly/internal/auth"
	"github.com/feastly/feastly/internal/authz"
	"github.com/feastly/feastly/internal/gateway"
	handler "github.com/feastly/feastly/internal/handler/http"
	"github.com/feastly/feastly/internal/middleware"
	"github.com/feastly/feastly/internal/repository"
	"github.com/feastly/feastly/internal/repository/postgres"
	"github.com/feastly/feastly/internal/service"
	"github.com/feastly/feastly/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// development fallback, override with AUTH_TOKEN_KEY
const defaultAuthTokenKey = "f53ac685bbceebd75043e6be2e06ee07"

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	err = db.Migrate()
	if err != nil {
		logger.Fatal("Error migrating database", zap.Error(err))
	}

	authTokenKey := cfg.AuthTokenKey
	if authTokenKey == "" {
		authTokenKey = defaultAuthTokenKey
	}
	tokenKey, err := hex.DecodeString(authTokenKey)
	if err != nil {
		logger.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// shared TTL counters for rate limiting
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	// payment gateway client
	gw := gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewaySecret)

	// authorization engine
	engine := authz.New()

	// dependency injection
	// repositories
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	cancellationRepo := repository.NewCancellationRepository(db)

	// services
	orderService := service.NewOrderService(orderRepo, menuRepo, deliveryRepo, engine, logger)
	paymentService := service.NewPaymentService(paymentRepo, cancellationRepo, orderService, gw, engine, logger)
	deliveryService := service.NewDeliveryService(deliveryRepo, driverRepo, paymentRepo, orderService, engine, logger)
	cancellationService := service.NewCancellationService(cancellationRepo, orderService, paymentRepo, gw, deliveryService, engine, logger)

	// handlers
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	webhookHandler := handler.NewWebhookHandler(paymentService, gw, logger)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)
	driverHandler := handler.NewDriverHandler(deliveryService)
	cancellationHandler := handler.NewCancellationHandler(cancellationService)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))

	// unauthenticated, signature-verified against the raw body
	router.With(middleware.RateLimit(rdb, logger, "webhook", 300, time.Minute)).
		Post("/api/payments/webhooks/gateway", webhookHandler.HandleGatewayWebhook())

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(handler.AuthMiddleware(token))

		group.Get("/api/orders", orderHandler.ListOrders())
		group.Post("/api/orders", orderHandler.CreateOrder())
		group.Get("/api/orders/{id}", orderHandler.GetOrder())
		group.Put("/api/orders/{id}", orderHandler.UpdateOrder())

		group.Group(func(payments chi.Router) {
			payments.Use(middleware.RateLimit(rdb, logger, "payments", 30, time.Minute))
			payments.Get("/api/payments/{orderID}/payment-intent", paymentHandler.GetPayment())
			payments.Post("/api/payments/{orderID}/payment-intent", paymentHandler.CreatePaymentIntent())
			payments.Get("/api/payments/{orderID}/checkout-session", paymentHandler.GetPayment())
			payments.Post("/api/payments/{orderID}/checkout-session", paymentHandler.CreateCheckoutSession())
		})

		group.Get("/api/deliveries", deliveryHandler.ListDeliveries())
		group.Post("/api/deliveries", deliveryHandler.CreateDelivery())
		group.Get("/api/deliveries/{id}", deliveryHandler.GetDelivery())
		group.Put("/api/deliveries/{id}", deliveryHandler.UpdateDelivery())

		group.Get("/api/drivers", driverHandler.ListDrivers())
		group.Post("/api/drivers", driverHandler.CreateDriver())
		group.Get("/api/drivers/{id}", driverHandler.GetDriver())
		group.Put("/api/drivers/{id}", driverHandler.UpdateDriver())

		group.Get("/api/order-cancellations", cancellationHandler.ListCancellations())
		group.Post("/api/order-cancellations", cancellationHandler.CreateCancellation())
		group.Get("/api/order-cancellations/{id}", cancellationHandler.GetCancellation())
		group.Put("/api/order-cancellations/{id}", cancellationHandler.UpdateCancellation())
	})

	// sweep pending payments whose webhook never arrived
	processor := worker.NewPaymentProcessor(paymentService, cfg.PaymentSweepEvery, logger)
	go processor.ProcessPayments(ctx)

	logger.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
