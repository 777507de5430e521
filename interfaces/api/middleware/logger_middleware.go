package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hotsprings/pkg/logger"
)

// LoggerMiddleware logs one line per completed request.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.API("request", c.Method()+" "+c.Path(), map[string]interface{}{
			"status_code": c.Response().StatusCode(),
			"duration":    time.Since(start).String(),
			"request_id":  RequestID(c),
			"ip":          c.IP(),
		})
		return err
	}
}
