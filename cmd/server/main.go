// Package main is the entry point for the card service.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardvault/internal/client/internalcall"
	"cardvault/internal/config"
	"cardvault/internal/handlers"
	"cardvault/internal/middleware"
	"cardvault/internal/repositories"
	"cardvault/internal/repositories/cache"
	"cardvault/internal/routes"
	"cardvault/internal/services/creditcard"

	"github.com/redis/go-redis/v9"
)

const (
	lockRetries     = 3
	lockBackoff     = 50 * time.Millisecond
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	store, err := repositories.OpenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open card store: %v", err)
	}
	defer store.Close()

	if store.DB != nil {
		go logPoolStats(store)
	}

	// Optional number lock
	var redisClient *redis.Client
	var locker creditcard.NumberLocker = cache.NoopLock{}
	if cfg.LockEnabled() {
		redisClient = cache.NewRedisClient(&cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}()

		if err := cache.HealthCheck(context.Background(), redisClient); err != nil {
			log.Fatalf("Failed to reach Redis: %v", err)
		}
		locker = cache.NewRedisLock(redisClient, cfg.CardLockTTL, lockRetries, lockBackoff)
		log.Println("✅ Redis number lock enabled")
	}

	cardService := creditcard.NewService(store.Cards, locker)
	remote := internalcall.New(cfg.InternalCall, nil)

	app := routes.NewApp()
	routes.SetupRoutes(app, routes.Options{
		Cards:        handlers.NewCreditCardHandler(cardService),
		InternalCall: handlers.NewInternalCallHandler(remote),
		Health:       handlers.NewHealthHandler(store.Cards, redisClient),
		Credentials: middleware.Credentials{
			Username:     cfg.APIUsername,
			Password:     cfg.APIPassword,
			PasswordHash: cfg.APIPasswordHash,
		},
		CORSAllowOrigins:      cfg.CORSAllowOrigins,
		InternalCallRateLimit: cfg.InternalCallRateLimit,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("⚠️ Server shutdown failed: %v", err)
		}
	}()

	log.Printf("Starting card service on :%s (store=%s)", cfg.Port, cfg.Store)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}

// logPoolStats reports connection pool usage once a minute.
func logPoolStats(store *repositories.Store) {
	sqlDB, err := store.DB.DB()
	if err != nil {
		log.Printf("⚠️ Failed to get database instance: %v", err)
		return
	}

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		stats := sqlDB.Stats()
		log.Printf("DB Stats: Open=%d, Idle=%d, InUse=%d, WaitCount=%d, WaitDuration=%s",
			stats.OpenConnections, stats.Idle, stats.InUse, stats.WaitCount, stats.WaitDuration)
	}
}
