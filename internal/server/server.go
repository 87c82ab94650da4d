// Package server assembles the Fiber application: router settings, middleware chain,
// HBNB routes and the operational endpoints.
package server

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hbnbweb/docs"
	"hbnbweb/internal/config"
	handlers "hbnbweb/internal/http/handler"
	"hbnbweb/internal/http/middleware"
	"hbnbweb/internal/logger"
	"hbnbweb/internal/service"
	"hbnbweb/internal/view"
)

// Options carries the dependencies of New.
type Options struct {
	Config  *config.AppConfig
	Service service.GreetingService
	// Registry receives the HTTP metrics. Required when Config.MetricsEnabled.
	Registry *prometheus.Registry
	// LogWriter receives request logs; stdout when nil.
	LogWriter io.Writer
}

// New builds the application without starting the listener.
func New(opts Options) (*fiber.App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Load()
	}
	svc := opts.Service
	if svc == nil {
		svc = service.NewGreetingService()
	}
	logWriter := opts.LogWriter
	if logWriter == nil {
		logWriter = os.Stdout
	}

	views := view.New()
	if err := views.Load(); err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		CaseSensitive:         true,
		StrictRouting:         false,
		UnescapePath:          true,
		Views:                 views,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestID first so every later middleware and the error handler can read it
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	app.Use(middleware.Logger(logger.New(logWriter, cfg.Location(), cfg.LogLevel)))

	if cfg.MetricsEnabled {
		if opts.Registry == nil {
			return nil, fmt.Errorf("metrics enabled without a registry")
		}
		prom, err := middleware.NewPrometheusMiddleware(opts.Registry)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		app.Use(prom.Handler())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	if cfg.SwaggerEnabled {
		app.Get("/swagger/*", swaggerHandler())
	}

	handlers.RegisterRoutes(app, svc)

	return app, nil
}

// swaggerHandler serves Swagger UI. doc.json is rendered from a per-request copy of
// docs.SwaggerInfo carrying the request's host and scheme; the shared spec is never
// written.
func swaggerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("*") != "doc.json" {
			return swagger.HandlerDefault(c)
		}

		scheme := c.Protocol()
		if proto := c.Get(fiber.HeaderXForwardedProto); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		spec := *docs.SwaggerInfo
		spec.Host = c.Get(fiber.HeaderHost)
		spec.Schemes = []string{scheme}

		return c.Type("json").SendString(spec.ReadDoc())
	}
}
