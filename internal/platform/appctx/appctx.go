// Package appctx carries the operation-scoped logger and the acting user in a
// context.Context so services never reach for ambient globals.
package appctx

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other packages' keys.
type contextKey string

const (
	loggerKey = contextKey("logger")
	actorKey  = contextKey("actor")
)

// WithLogger returns a context carrying an operation-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerFromCtx retrieves the operation-scoped logger from the context.
// It returns the default logger if none was attached.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// WithActor returns a context carrying the acting user's email. There is no
// real identity system; the actor is the configured simulated user.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActorFromCtx retrieves the acting user from the context.
func GetActorFromCtx(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok || actor == "" {
		return "", false
	}
	return actor, true
}
