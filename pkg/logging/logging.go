// Package logging provides structured logging configuration and initialization.
// It wraps slog with configurable log levels and output formats.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SystemKey is the attribute that selects a per-system level override.
const SystemKey = "system"

// New creates a configured slog.Logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a configured slog.Logger writing to w.
// It uses a text or JSON handler based on the Format setting. Loggers derived
// with With("system", name) switch to the level configured for name.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	base := cfg.Level.ToSlogLevel()
	systems := make(map[string]slog.Level, len(cfg.Systems))
	lowest := base
	for name, lvl := range cfg.Systems {
		systems[name] = lvl.ToSlogLevel()
		lowest = min(lowest, systems[name])
	}

	opts := &slog.HandlerOptions{Level: lowest}

	var inner slog.Handler
	if cfg.Format == FormatJSON {
		inner = slog.NewJSONHandler(w, opts)
	} else {
		inner = slog.NewTextHandler(w, opts)
	}

	return slog.New(&systemHandler{inner: inner, level: base, systems: systems})
}

type systemHandler struct {
	inner   slog.Handler
	level   slog.Level
	systems map[string]slog.Level
}

func (h *systemHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *systemHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.inner.Handle(ctx, r)
}

func (h *systemHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &systemHandler{
		inner:   h.inner.WithAttrs(attrs),
		level:   h.level,
		systems: h.systems,
	}
	for _, a := range attrs {
		if a.Key != SystemKey {
			continue
		}
		if lvl, ok := h.systems[a.Value.String()]; ok {
			next.level = lvl
		}
	}
	return next
}

func (h *systemHandler) WithGroup(name string) slog.Handler {
	return &systemHandler{
		inner:   h.inner.WithGroup(name),
		level:   h.level,
		systems: h.systems,
	}
}

// Level represents a logging severity level.
type Level string

// Log level constants.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Validate checks if the level is a valid logging level.
func (l Level) Validate() error {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return nil
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l)
	}
}

// ToSlogLevel converts the Level to its slog.Level equivalent.
// Unknown levels default to slog.LevelInfo.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Format represents the log output format.
type Format string

// Log format constants.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Validate checks if the format is a valid logging format.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", f)
	}
}
