package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/oasrewrite/internal/nodewalk"
	"github.com/erraggy/oasrewrite/rewriter"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Rewrite defaults, overridable per call.
	DuplicateSchema  string
	StrictCollisions bool
	MaxDepth         int

	// Change and reference listing defaults.
	ChangeLimit int
	MaxLimit    int

	// MaxInlineSize bounds inline document content in bytes.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASREWRITE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DuplicateSchema:  envString("OASREWRITE_DUPLICATE_SCHEMA", rewriter.DefaultDuplicateSchema),
		StrictCollisions: envBool("OASREWRITE_STRICT_COLLISIONS", false),
		MaxDepth:         envInt("OASREWRITE_MAX_DEPTH", nodewalk.DefaultMaxDepth),
		ChangeLimit:      envInt("OASREWRITE_CHANGE_LIMIT", 100),
		MaxLimit:         envInt("OASREWRITE_MAX_LIMIT", 1000),
		MaxInlineSize:    envInt64("OASREWRITE_MAX_INLINE_SIZE", 10*1024*1024),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
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

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
