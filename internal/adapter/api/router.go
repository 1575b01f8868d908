package api

import (
	"insight-gateway/internal/domain/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RouterOptions struct {
	// Limiter is optional. Nil disables rate limiting.
	Limiter   repository.RequestLimiter
	AccessLog bool
	Log       *zap.Logger
}

func SetupRouter(app *fiber.App, handler *InsightHandler, opts RouterOptions) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	app.Get("/health", handler.HandleHealth)

	// Endpoints
	var guards []fiber.Handler
	if opts.Limiter != nil {
		guards = append(guards, RateLimit(opts.Limiter, opts.Log))
	}
	app.Post("/insight", append(guards, handler.HandleInsight)...)
	app.Post("/generate-image", append(guards, handler.HandleGenerateImage)...)
}
