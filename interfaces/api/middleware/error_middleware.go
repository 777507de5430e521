package middleware

import (
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"hotsprings/domain/dto"
	"hotsprings/pkg/apperrors"
	"hotsprings/pkg/logger"
)

// ErrorHandler translates domain errors to HTTP statuses and the uniform
// error body. Expected kinds log a single line; anything else logs with a
// stack trace and returns a generic 500 message.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, expected := statusFor(err)
		message := err.Error()

		if expected {
			logger.Warn(logger.CategoryAPI, "request_failed", message, map[string]interface{}{
				"status_code": status,
				"path":        c.Path(),
				"method":      c.Method(),
				"request_id":  RequestID(c),
			})
		} else {
			message = "an unexpected error occurred"
			logger.Error(logger.CategoryAPI, "request_failed", "Unexpected error", err, map[string]interface{}{
				"status_code": status,
				"path":        c.Path(),
				"method":      c.Method(),
				"request_id":  RequestID(c),
				"stack":       string(debug.Stack()),
			})
		}

		return c.Status(status).JSON(dto.ErrorResponse{
			Message:      message,
			StatusReason: utils.StatusMessage(status),
			StatusCode:   status,
			Timestamp:    time.Now().Format(time.RFC1123),
			RequestURI:   c.OriginalURL(),
		})
	}
}

// statusFor maps an error to its HTTP status and reports whether the error
// was an anticipated domain failure.
func statusFor(err error) (int, bool) {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return fiber.StatusNotFound, true
	case apperrors.KindConflict:
		return fiber.StatusConflict, true
	case apperrors.KindIllegalState:
		return fiber.StatusBadRequest, true
	case apperrors.KindMethodNotAllowed:
		return fiber.StatusMethodNotAllowed, true
	}

	// Fiber's own errors (unknown route, malformed params, body limits)
	// keep their code and are not worth a stack trace.
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, true
	}

	return fiber.StatusInternalServerError, false
}
