package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	ierr "agendaapi/internal/errors"
	"agendaapi/internal/http/middleware"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	Detail string `json:"detail"`
}

func writeError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(errorPayload{Detail: detail})
}

// respondError maps a service error to its status code and client message.
// Server-side failures never leak their cause; the error is handed to the
// access log instead.
func respondError(c *fiber.Ctx, err error) error {
	status := ierr.HTTPStatusFromErr(err)
	if status >= fiber.StatusInternalServerError {
		c.Locals(middleware.ErrorLocalKey, err)
		return writeError(c, status, "Internal server error")
	}

	detail, ok := ierr.DisplayMessage(err)
	if !ok {
		detail = utils.StatusMessage(status)
	}
	return writeError(c, status, detail)
}

// ErrorHandler returns the Fiber error handler. Router errors such as 404 and
// 405 keep their status; anything else goes through respondError.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				c.Locals(middleware.ErrorLocalKey, err)
			}
			return writeError(c, fe.Code, utils.StatusMessage(fe.Code))
		}
		return respondError(c, err)
	}
}
