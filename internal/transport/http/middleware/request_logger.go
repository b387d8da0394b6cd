// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, status and duration.
// Server errors are logged at error level together with the handler error.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []any{
			// fiber reuses request buffers once the handler returns.
			"method", utils.CopyString(c.Method()),
			"path", utils.CopyString(c.OriginalURL()),
			"status", status,
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
			"request_id", utils.CopyString(reqID),
		}
		if status >= fiber.StatusInternalServerError {
			log.Errorw("http", append(fields, "error", err)...)
		} else {
			log.Infow("http", fields...)
		}
		return err
	}
}
