package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func rateLimit(max int, keyFor func(*fiber.Ctx) string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   time.Minute,
		KeyGenerator: keyFor,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded"})
		},
	})
}

// RateLimitAuth throttles signup and signin to 10 attempts per minute per
// client IP.
func RateLimitAuth() fiber.Handler {
	return rateLimit(10, func(c *fiber.Ctx) string {
		return "auth:" + c.IP()
	})
}

// RateLimitWrite throttles expense and category writes to 60 per minute,
// keyed by the authenticated user, falling back to the client IP.
func RateLimitWrite() fiber.Handler {
	return rateLimit(60, func(c *fiber.Ctx) string {
		if uid, ok := c.Locals("user_id").(string); ok && uid != "" {
			return "write:" + uid
		}
		return "write:" + c.IP()
	})
}
