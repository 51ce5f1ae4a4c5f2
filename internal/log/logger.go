// Package log provides the structured logger used for diagnostics. Lint
// reports and prompts are written to stdout by the commands themselves.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel overrides the default level when set, e.g. COMMITLINT_LOG=debug.
const EnvLevel = "COMMITLINT_LOG"

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	NoColor bool
}

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// Configure replaces the global logger. Without an explicit level the
// environment is consulted and the logger falls back to warnings only.
func Configure(cfg Config) {
	level := zerolog.WarnLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	} else if env := os.Getenv(EnvLevel); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	l := zerolog.New(zerolog.ConsoleWriter{
		Out:        writer,
		NoColor:    cfg.NoColor,
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Logger()

	mu.Lock()
	base = l
	mu.Unlock()
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}

func init() {
	Configure(Config{})
}
