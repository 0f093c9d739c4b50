// Package logger constructs the application's structured zerolog logger.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	Level  string // trace, debug, info, warn, error; defaults to info
	Pretty bool   // human-readable console output instead of JSON
}

// New builds a zerolog logger with the configured level and output format.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var out = zerolog.New(os.Stderr)
	if cfg.Pretty {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return out.Level(level).With().Timestamp().Logger()
}

// Printf adapts a zerolog.Logger to printf-style leveled logging, satisfying
// small logger interfaces like the simulation engine's.
type Printf struct {
	L zerolog.Logger
}

func (p Printf) Debugf(format string, args ...any) { p.L.Debug().Msgf(format, args...) }
func (p Printf) Infof(format string, args ...any)  { p.L.Info().Msgf(format, args...) }
func (p Printf) Warnf(format string, args ...any)  { p.L.Warn().Msgf(format, args...) }
func (p Printf) Errorf(format string, args ...any) { p.L.Error().Msgf(format, args...) }
