// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/glmath/mat"
)

// Logger wraps slog.Logger with glkernel-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger builds a text or JSON logger writing to w.
func NewLogger(w io.Writer, format string, level slog.Level) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, format)
	}
	return &Logger{Logger: slog.New(h)}, nil
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithKernel tags records with the kernel name.
func (l *Logger) WithKernel(k mat.Kernel) *Logger {
	return &Logger{Logger: l.Logger.With("kernel", k.String())}
}

// WithWorker tags records with a worker index.
func (l *Logger) WithWorker(id int) *Logger {
	return &Logger{Logger: l.Logger.With("worker", id)}
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return lvl, nil
}
