package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartapp "github.com/storefront/cartsync/internal/application/cart"
	"github.com/storefront/cartsync/internal/domain/cart"
	"github.com/storefront/cartsync/internal/infrastructure/auth"
	"github.com/storefront/cartsync/internal/infrastructure/config"
	"github.com/storefront/cartsync/internal/infrastructure/handoff"
	"github.com/storefront/cartsync/internal/infrastructure/logger"
	"github.com/storefront/cartsync/internal/infrastructure/storefront"
	"github.com/storefront/cartsync/internal/interfaces/http/handler"
	"github.com/storefront/cartsync/internal/interfaces/http/middleware"
	"github.com/storefront/cartsync/internal/interfaces/http/router"
)

const maxRequestBody = 1 << 20 // 1 MiB

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting cartsync",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Remote cart service client
	clientConfig := storefront.NewClientConfig(cfg.Remote.BaseURL)
	clientConfig.TimeoutSeconds = cfg.Remote.TimeoutSeconds
	remote, err := storefront.NewClient(clientConfig)
	if err != nil {
		log.Fatal("Failed to create cart service client", zap.Error(err))
	}

	// Checkout-selection persistence: Redis, with in-memory fallback outside
	// production
	factory := handoff.NewSelectionStoreFactory(cfg.Redis,
		handoff.WithLogger(log),
		handoff.WithInMemoryFallback(!cfg.Redis.Required),
	)
	selections, err := factory.CreateStore()
	if err != nil {
		log.Fatal("Failed to create selection store", zap.Error(err))
	}
	defer func() {
		if err := selections.Close(); err != nil {
			log.Error("Error closing selection store", zap.Error(err))
		}
	}()

	// Application services
	runtimes := cartapp.NewRegistry()
	syncService := cartapp.NewSyncService(remote, runtimes, log)
	selectionService := cartapp.NewSelectionService(runtimes)
	checkoutService := cartapp.NewCheckoutService(remote, selections, runtimes, cart.HandoffConfig{TTL: cfg.Handoff.TTL}, log)

	credentials := auth.NewCredentialService(cfg.JWT)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(
		middleware.RequestID(),
		logger.RequestLogger(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig),
		middleware.BodyLimit(maxRequestBody),
		middleware.SessionAuth(credentials),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.NewRouter(engine).
		Register(handler.NewCartHandler(syncService, selectionService)).
		Register(handler.NewCheckoutHandler(checkoutService)).
		Register(handler.NewOrderHandler(syncService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
