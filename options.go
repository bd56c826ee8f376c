package ckanreg

import (
	"context"
	"log/slog"
)

// Option configures a Registry at construction time.
type Option func(*registryConfig)

type registryConfig struct {
	logger *slog.Logger
}

// WithLogger sets a structured logger for registry diagnostics (e.g. the
// warning RegisterDLL emits when a path fails classification). If not
// set, logging is disabled — libraries should be silent by default and
// let callers opt in.
//
// Any slog backend works, since log/slog separates frontend from
// backend by design: see https://go.dev/blog/slog.
func WithLogger(l *slog.Logger) Option {
	return func(c *registryConfig) {
		c.logger = l
	}
}

// log returns the configured logger, or a no-op logger if none was set.
// This lets internal code call logging methods without nil checks.
func (c *registryConfig) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(discardHandler{})
}

// discardHandler is a slog.Handler that discards all log records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
