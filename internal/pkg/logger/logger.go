// Package logger builds the structured logger shared by the runner and the
// adapters. Domain and application packages never log; they return errors.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type Config struct {
	Level  string
	Format string
	Output io.Writer
}

// New returns a logger writing to cfg.Output at cfg.Level. Timestamps are
// written in UTC with nanosecond precision.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case FormatJSON:
		h = slog.NewJSONHandler(cfg.Output, opts)
	case FormatText, "":
		h = slog.NewTextHandler(cfg.Output, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q (expected json|text)", cfg.Format)
	}

	return slog.New(h), nil
}

// ParseLevel accepts debug, info, warn and error in any letter case.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unsupported log level %q: %w", s, err)
	}
	return level, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
