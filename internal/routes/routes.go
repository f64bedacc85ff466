package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/theatrelog/api/internal/config"
	"github.com/theatrelog/api/internal/dto"
	"github.com/theatrelog/api/internal/handlers"
	"github.com/theatrelog/api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	operationHandler *handlers.OperationHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — login/register are public, stricter rate limit: 10 req/min
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Get("/me", middleware.Protected(cfg.JWTSecret), authHandler.Me)

	// Operations — every route requires a valid token
	ops := api.Group("/operations", middleware.Protected(cfg.JWTSecret))
	ops.Get("/", operationHandler.List)
	ops.Post("/", operationHandler.Create)
	ops.Get("/stats", operationHandler.Stats)
	ops.Get("/:id", operationHandler.Get)
	ops.Put("/:id", operationHandler.Update)
	ops.Delete("/:id", operationHandler.Delete)

	// Structured 404 for any unmatched method+path under /api
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(
			dto.Fail("Route " + c.Method() + " " + c.OriginalURL() + " not found"),
		)
	})
}
