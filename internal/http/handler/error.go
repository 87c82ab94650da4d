package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hbnbweb/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorClass struct {
	code    string
	message string
}

var errorClasses = map[int]errorClass{
	fiber.StatusBadRequest:       {"BAD_REQUEST", "bad request"},
	fiber.StatusNotFound:         {"NOT_FOUND", "resource not found"},
	fiber.StatusMethodNotAllowed: {"METHOD_NOT_ALLOWED", "method not allowed"},
}

var internalError = errorClass{"INTERNAL_ERROR", "internal server error"}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(middleware.RequestIDLocalKey).(string); ok {
		return s
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Unmatched routes and integer parameters that fail to parse both end up here as 404.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		class, ok := errorClasses[status]
		if !ok {
			status = fiber.StatusInternalServerError
			class = internalError
		}
		return writeError(c, status, class.code, class.message)
	}
}
