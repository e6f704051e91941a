package config

import (
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port        string
	Host        string
	DBPath      string
	RoutePrefix string
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to defaults. Environment variables win over
// .env entries.
func Load() Config {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("SERVER_PORT", "3000"),
		Host:        getEnv("SERVER_HOST", "0.0.0.0"),
		DBPath:      getEnv("DB_PATH", "./data/todos.db"),
		RoutePrefix: normalizePrefix(os.Getenv("ROUTE_PREFIX")),
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// normalizePrefix ensures a non-empty prefix starts with a slash and has
// no trailing slash, so it can be mounted directly.
func normalizePrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return strings.TrimRight(prefix, "/")
}
