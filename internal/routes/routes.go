// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"time"

	"cardvault/internal/handlers"
	"cardvault/internal/middleware"
	"cardvault/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const healthPath = "/health"

// Options carries everything the router needs from main.
type Options struct {
	Cards        *handlers.CreditCardHandler
	InternalCall *handlers.InternalCallHandler
	Health       *handlers.HealthHandler
	Credentials  middleware.Credentials

	CORSAllowOrigins string
	// InternalCallRateLimit is requests per minute per IP; zero disables it.
	InternalCallRateLimit int
}

// NewApp builds a fiber app that renders errors as {status, type, message}.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "cardvault",
		ErrorHandler: handlers.ErrorHandler,
	})
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, opts Options) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == healthPath
		},
	}))

	if opts.CORSAllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSAllowOrigins,
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
			AllowMethods:     "GET,POST,HEAD,PUT,DELETE",
			AllowCredentials: opts.CORSAllowOrigins != "*",
		}))
	}

	// Public
	app.Get(healthPath, opts.Health.HealthCheck)

	// Everything below requires basic credentials
	auth := middleware.BasicAuth(opts.Credentials)

	cards := app.Group("/credit-cards", auth)
	cards.Get("/", opts.Cards.GetCards)
	cards.Post("/", opts.Cards.CreateCard)
	cards.Get("/:id", opts.Cards.GetCard)
	cards.Put("/:id", opts.Cards.UpdateCard)
	cards.Delete("/:id", opts.Cards.DeleteCard)

	internal := []fiber.Handler{auth}
	if opts.InternalCallRateLimit > 0 {
		internal = append(internal, limiter.New(limiter.Config{
			Max:        opts.InternalCallRateLimit,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: response.TooManyRequests,
		}))
	}
	internal = append(internal, opts.InternalCall.GetCards)
	app.Get("/internal-credit-cards", internal...)
}
