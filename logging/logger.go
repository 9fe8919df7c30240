// Package logging builds the zerolog logger used by the command line.
//
// Library code never holds a logger: it reads the one stored in its context
// with FromContext, which is disabled unless WithContext was called.
package logging

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New creates a human readable logger writing to w.
// Debug messages are only emitted when verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// WithContext adds the logger to the context.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext retrieves the logger from the context, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
