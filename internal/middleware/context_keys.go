package middleware

import (
	"context"
	"log/slog"
)

// contextKey is a private key type for request-context values.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// GetLoggerFromCtx retrieves the request-scoped logger from a plain
// context.Context. Services receive the request context rather than the Gin
// context, so this is the accessor the service layer uses. It falls back to
// slog.Default when no logger was attached.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}
