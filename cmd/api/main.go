package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/echofashion/storefront-api/internal/config"
	"github.com/echofashion/storefront-api/internal/handler"
	"github.com/echofashion/storefront-api/internal/middleware"
	"github.com/echofashion/storefront-api/internal/repository"
	"github.com/echofashion/storefront-api/internal/service"
	"github.com/echofashion/storefront-api/internal/storage"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Snapshot storage
	store, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		log.Error("open storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	log.Info("storage ready", "backend", cfg.Storage.Backend)

	// State stores, restored from the last snapshot
	catalogRepo := repository.NewCatalogRepository(ctx, store, log)
	cartRepo := repository.NewCartRepository(ctx, store, log)
	orderRepo := repository.NewOrderRepository(ctx, store, log)
	sessionRepo := repository.NewSessionRepository(ctx, store, log)

	if err := catalogRepo.Seed(ctx, repository.DefaultProducts()); err != nil {
		log.Error("seed catalog", "error", err)
		os.Exit(1)
	}

	// Services
	authSvc, err := service.NewAuthService(sessionRepo, cartRepo, cfg.Auth)
	if err != nil {
		log.Error("init auth service", "error", err)
		os.Exit(1)
	}
	catalogSvc := service.NewCatalogService(catalogRepo)
	cartSvc := service.NewCartService(cartRepo, catalogRepo)
	orderSvc := service.NewOrderService(orderRepo, cartRepo)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	cartH := handler.NewCartHandler(cartSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	healthH := handler.NewHealthHandler(store)

	// Router
	router := gin.Default()
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	secret := cfg.Auth.JWTSecret
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/login", authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/me", authH.Me)

		products := v1.Group("/products")
		products.GET("", catalogH.List)
		products.GET("/:id", catalogH.GetByID)
		products.POST("", middleware.Auth(secret), middleware.AdminOnly(), catalogH.Create)

		cart := v1.Group("/cart")
		cart.GET("", cartH.GetCart)
		cart.POST("/items", cartH.AddLine)
		cart.PUT("/items", cartH.UpdateLine)
		cart.DELETE("/items", cartH.RemoveLine)
		cart.DELETE("", cartH.Clear)

		orders := v1.Group("/orders")
		orders.POST("", middleware.OptionalAuth(secret), orderH.Create)
		orders.GET("", middleware.Auth(secret), middleware.AdminOnly(), orderH.List)
		orders.GET("/:id", middleware.OptionalAuth(secret), orderH.Get)
		orders.PATCH("/:id/status", middleware.Auth(secret), middleware.AdminOnly(), orderH.UpdateStatus)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(cfg.Path)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return storage.NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
