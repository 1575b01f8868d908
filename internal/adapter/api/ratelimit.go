package api

import (
	"insight-gateway/internal/domain/entity"
	"insight-gateway/internal/domain/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RateLimit rejects callers that have used up their budget. Limiter errors
// let the request through.
func RateLimit(limiter repository.RequestLimiter, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, err := limiter.Allow(c.UserContext(), c.IP())
		if err != nil {
			log.Warn("rate limiter unavailable", zap.String("client", c.IP()), zap.Error(err))
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": entity.ErrRateLimitExceeded.Error()})
		}
		return c.Next()
	}
}
