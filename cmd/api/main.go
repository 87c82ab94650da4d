package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"hbnbweb/internal/config"
	"hbnbweb/internal/logger"
	"hbnbweb/internal/otel"
	"hbnbweb/internal/server"
	"hbnbweb/internal/service"
)

// @title HBNB API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.Location(), cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.AppName, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := server.New(server.Options{
		Config:   cfg,
		Service:  service.NewGreetingService(),
		Registry: reg,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	addr := cfg.Addr()
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()
	log.Info().Str("addr", addr).Msg("server_started")

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
		return
	case <-ctx.Done():
	}

	log.Info().Msg("server_stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server_shutdown_failed")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracing_shutdown_failed")
	}

	log.Info().Msg("server_stopped")
}
