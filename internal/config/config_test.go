package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearEnv blanks the given vars for the test. An empty value is
// equivalent to absence here: getEnv falls back to its default and an
// empty ROUTE_PREFIX normalizes to "".
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "SERVER_HOST", "DB_PATH", "ROUTE_PREFIX")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "./data/todos.db", cfg.DBPath)
	assert.Equal(t, "", cfg.RoutePrefix)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("ROUTE_PREFIX", "api")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "/api", cfg.RoutePrefix)
}

func TestAddr(t *testing.T) {
	cfg := Config{Host: "0.0.0.0", Port: "3000"}
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
}

func TestNormalizePrefix(t *testing.T) {
	tests := map[string]string{
		"":      "",
		"api":   "/api",
		"/api":  "/api",
		"/api/": "/api",
		"api/":  "/api",
	}

	for in, want := range tests {
		assert.Equal(t, want, normalizePrefix(in), "prefix %q", in)
	}
}
