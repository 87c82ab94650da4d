package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// responseStatus returns the status the client will see. The global error handler
// runs after the middleware chain unwinds, so a returned error decides the status.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
