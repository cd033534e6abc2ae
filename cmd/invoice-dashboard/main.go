package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dhoini/invoice-dashboard/internal/api/rest"
	"github.com/Dhoini/invoice-dashboard/internal/api/rest/handlers"
	"github.com/Dhoini/invoice-dashboard/internal/auth"
	"github.com/Dhoini/invoice-dashboard/internal/cache"
	"github.com/Dhoini/invoice-dashboard/internal/config"
	"github.com/Dhoini/invoice-dashboard/internal/events"
	"github.com/Dhoini/invoice-dashboard/internal/gateway"
	"github.com/Dhoini/invoice-dashboard/internal/metrics"
	"github.com/Dhoini/invoice-dashboard/internal/service"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	log := logger.New(os.Getenv("APP_ENV"))
	defer log.Sync()

	log.Infow("Invoice dashboard starting up...")

	cfg, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatalw("Failed to load configuration", "error", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Warnw("JWT secret is not set; sessions will not survive restarts securely")
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// View cache is optional: without Redis every table read hits the data
	// service directly.
	viewCache, err := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log.Named("cache"))
	if err != nil {
		log.Warnw("Failed to initialize Redis cache, continuing without caching", "error", err)
		viewCache = nil
	} else {
		defer func() {
			if err := viewCache.Close(); err != nil {
				log.Errorw("Error closing Redis connection", "error", err)
			}
		}()
	}

	gatewayClient := gateway.NewClient(gateway.Config{
		BaseURL: cfg.DataService.BaseURL,
		Timeout: time.Duration(cfg.DataService.Timeout) * time.Second,
	}, log.Named("gateway"))

	var producer events.Producer = events.NoopProducer{}
	if cfg.Kafka.Enabled {
		kafkaProducer, err := events.NewKafkaProducer(cfg.Kafka.Brokers, log.Named("events"))
		if err != nil {
			log.Errorw("Failed to initialize Kafka producer, continuing without event publishing", "error", err)
		} else {
			producer = kafkaProducer
			defer func() {
				if err := producer.Close(); err != nil {
					log.Errorw("Error closing Kafka producer", "error", err)
				}
			}()
		}
	}

	registry := prometheus.NewRegistry()
	commandMetrics := metrics.NewCommandMetrics(registry, log)

	tokenService := auth.NewTokenService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Minute)

	var invalidator service.ViewInvalidator
	var handlerCache handlers.ViewCache
	if viewCache != nil {
		invalidator = viewCache
		handlerCache = viewCache
	}

	invoiceService := service.NewInvoiceService(gatewayClient, invalidator, producer, commandMetrics, log)
	authService := service.NewAuthService(gatewayClient, auth.BcryptVerifier{}, tokenService, commandMetrics, log)

	router := rest.SetupRouter(log, registry, rest.Deps{
		AuthService:    authService,
		InvoiceService: invoiceService,
		Gateway:        gatewayClient,
		Cache:          handlerCache,
		TokenValidator: tokenService,
	})

	server := rest.NewServer(router, cfg, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalw("Failed to start HTTP server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
	}

	log.Infow("Server exited")
}
