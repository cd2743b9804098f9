package logging

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent context key collisions.
type contextKey string

const loggerKey = contextKey("logger")

// NewContext returns a copy of ctx carrying the given logger. Callers at the
// operation boundary enrich the logger with request-scoped fields before
// storing it.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerFromCtx retrieves the scoped logger from the context. It falls
// back to the default logger when none was stored.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}
