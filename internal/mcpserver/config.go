package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/casetools/caser"
	"github.com/erraggy/casetools/segmenter"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// DefaultPolicy is used by the convert tool when no target is given.
	DefaultPolicy caser.Policy

	// DefaultMode is used by the segment tool when no mode is given.
	DefaultMode segmenter.Mode

	// MaxBatch caps the number of texts a single convert call accepts.
	MaxBatch int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CASETOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultPolicy: envPolicy("CASETOOLS_DEFAULT_POLICY", caser.Kebab),
		DefaultMode:   envMode("CASETOOLS_DEFAULT_MODE", segmenter.PlainSplit),
		MaxBatch:      envInt("CASETOOLS_MAX_BATCH", 1000),
	}
}

func envPolicy(key string, fallback caser.Policy) caser.Policy {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	p, err := caser.ParsePolicy(v)
	if err != nil {
		slog.Warn("invalid policy env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return p
}

func envMode(key string, fallback segmenter.Mode) segmenter.Mode {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	m, err := segmenter.ParseMode(v)
	if err != nil {
		slog.Warn("invalid mode env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return m
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
