// Package log builds the zerolog logger used by the gridpath CLI from its
// configuration.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridpath/internal/config"
)

// Logger is the structured logger passed around the CLI and into the search
// options.
type Logger = zerolog.Logger

// NewLogger builds a logger writing to stderr at cfg.Logging.Level, falling
// back to info for an empty or unknown level. Pretty selects the
// human-readable console format instead of JSON.
func NewLogger(cfg config.Config) Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg config.Config, out io.Writer) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if cfg.Logging.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
