package handler

import (
	"github.com/gofiber/fiber/v2"

	"hbnbweb/internal/service"
	"hbnbweb/internal/view"
)

// RegisterRoutes attaches the HBNB routes to the provided router.
// Trailing slashes are handled by the app's StrictRouting=false setting.
func RegisterRoutes(r fiber.Router, svc service.GreetingService) {
	r.Get("/", Hello(svc))
	r.Get("/hbnb", HBNB(svc))
	r.Get("/c/:text", CText(svc))
	// Two entries, one handler: /python binds the default text.
	r.Get("/python", PythonText(svc))
	r.Get("/python/:text", PythonText(svc))
	r.Get("/number/:n", IntParam("n"), Number(svc))
	r.Get("/number_template/:n", IntParam("n"), NumberTemplate())
	r.Get("/number_odd_or_even/:n", IntParam("n"), NumberOddOrEven(svc))

	r.Get("/healthz", LivenessProbe())
}

// Hello godoc
// @Summary Root greeting
// @Produce plain
// @Success 200 {string} string "Hello HBNB!"
// @Router / [get]
func Hello(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(svc.Hello())
	}
}

// HBNB godoc
// @Summary HBNB
// @Produce plain
// @Success 200 {string} string "HBNB"
// @Router /hbnb [get]
func HBNB(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(svc.HBNB())
	}
}

// CText godoc
// @Summary C followed by text, underscores shown as spaces
// @Produce plain
// @Param text path string true "text"
// @Success 200 {string} string "C is fun"
// @Router /c/{text} [get]
func CText(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(svc.C(c.Params("text")))
	}
}

// PythonText godoc
// @Summary Python followed by text, underscores shown as spaces
// @Produce plain
// @Param text path string false "text" default(is cool)
// @Success 200 {string} string "Python is cool"
// @Router /python/{text} [get]
func PythonText(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(svc.Python(c.Params("text", service.DefaultPythonText)))
	}
}

// Number godoc
// @Summary n is a number
// @Produce plain
// @Param n path integer true "non-negative integer"
// @Success 200 {string} string "89 is a number"
// @Failure 404 {object} errorPayload
// @Router /number/{n} [get]
func Number(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(svc.Number(intLocal(c, "n")))
	}
}

// NumberTemplate godoc
// @Summary HTML page showing n
// @Produce html
// @Param n path integer true "non-negative integer"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} errorPayload
// @Router /number_template/{n} [get]
func NumberTemplate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render(view.NumberTemplate, fiber.Map{
			"n": intLocal(c, "n"),
		})
	}
}

// NumberOddOrEven godoc
// @Summary HTML page showing whether n is odd or even
// @Produce html
// @Param n path integer true "non-negative integer"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} errorPayload
// @Router /number_odd_or_even/{n} [get]
func NumberOddOrEven(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n := intLocal(c, "n")
		return c.Render(view.NumberOddOrEvenTemplate, fiber.Map{
			"n":  n,
			"eo": svc.Parity(n),
		})
	}
}

// LivenessProbe reports that the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
