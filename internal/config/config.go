package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

const defaultShutdownTimeout = 10 * time.Second

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	Host               string
	Port               string
	AppName            string
	Timezone           string
	LogLevel           string
	MetricsEnabled     bool
	SwaggerEnabled     bool
	ShutdownTimeoutSec int
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() *AppConfig {
	return &AppConfig{
		Host:               getEnv("HOST", "0.0.0.0"),
		Port:               getEnv("PORT", "5000"),
		AppName:            getEnv("APP_NAME", "hbnb"),
		Timezone:           getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		SwaggerEnabled:     getEnvBool("SWAGGER_ENABLED", true),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
	}
}

// Addr returns the listen address in host:port form.
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Location resolves Timezone, falling back to UTC for unknown zones.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ShutdownTimeout is the grace period given to in-flight requests on shutdown.
func (c *AppConfig) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSec <= 0 {
		return defaultShutdownTimeout
	}
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
