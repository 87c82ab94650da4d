package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// IntParam guards a route so that it only matches when the named path parameter is
// a non-negative decimal integer of any length. The canonical digit string (no
// leading zeros) is stored in locals under the parameter name. Any other segment is
// answered as not found.
func IntParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, ok := canonicalDecimal(c.Params(name))
		if !ok {
			return fiber.ErrNotFound
		}
		c.Locals(name, n)
		return c.Next()
	}
}

func intLocal(c *fiber.Ctx, name string) string {
	n, _ := c.Locals(name).(string)
	return n
}

// canonicalDecimal accepts only [0-9]+; signs, spaces and other bases are rejected.
func canonicalDecimal(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	if s = strings.TrimLeft(s, "0"); s == "" {
		return "0", true
	}
	// Params may alias the request buffer.
	return strings.Clone(s), true
}
