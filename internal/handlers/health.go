package handlers

import (
	"context"
	"time"

	"cardvault/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const healthTimeout = 2 * time.Second

// Pinger is anything whose connectivity the health check reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
	redis *redis.Client
}

// NewHealthHandler reports the store and, when the number lock is enabled,
// redis. A nil client is reported as "disabled".
func NewHealthHandler(store Pinger, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{store: store, redis: redisClient}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	status := "ok"
	database := "connected"
	if err := h.store.Ping(ctx); err != nil {
		database = "unavailable"
		status = "degraded"
	}

	redisState := "disabled"
	if h.redis != nil {
		redisState = "connected"
		if err := cache.HealthCheck(ctx, h.redis); err != nil {
			redisState = "unavailable"
			status = "degraded"
		}
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"services": fiber.Map{
			"database": database,
			"redis":    redisState,
		},
	})
}
