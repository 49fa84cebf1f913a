package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	ierr "agendaapi/internal/errors"
)

// ErrorLocalKey holds a server-side error that a handler already answered
// with a generic 500, so the access log can still record its cause.
const ErrorLocalKey = "error"

// Logger writes one structured access-log entry per request. Entries carry
// request_id, method, path, status and latency_ms; 5xx responses are logged
// at error level together with their cause.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := responseStatus(c, err)
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		fields := []zap.Field{
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", utils.CopyString(c.Path())),
			zap.Int("status", status),
			zap.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			cause := err
			if cause == nil {
				cause, _ = c.Locals(ErrorLocalKey).(error)
			}
			log.Error("request failed", append(fields, zap.Error(cause))...)
		case status >= fiber.StatusBadRequest:
			log.Warn("request rejected", fields...)
		default:
			log.Info("request", fields...)
		}

		return err
	}
}

// responseStatus predicts the final status of a request. Errors returned down
// the chain are only written by the app's error handler after every
// middleware has returned.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ierr.HTTPStatusFromErr(err)
}
