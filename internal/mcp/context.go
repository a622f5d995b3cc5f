package mcp

import (
	"context"

	"github.com/bobmcallan/ebird-mcp/internal/common"
)

// loggerContextKey is the context key for the per-call logger.
type loggerContextKey struct{}

// WithLogger returns a new context carrying logger.
func WithLogger(ctx context.Context, logger *common.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// LoggerFromContext returns the logger attached by LoggingMiddleware, or a
// silent logger when there is none.
func LoggerFromContext(ctx context.Context) *common.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerContextKey{}).(*common.Logger); ok && l != nil {
			return l
		}
	}
	return silentLogger
}

var silentLogger = common.NewSilentLogger()
