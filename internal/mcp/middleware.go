package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/ebird-mcp/internal/common"
)

// LoggingMiddleware tags each tool call with a correlation id and logs its outcome.
func LoggingMiddleware(logger *common.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			callLogger := logger.WithCorrelationId(uuid.NewString())
			ctx = WithLogger(ctx, callLogger)

			start := time.Now()
			result, err := next(ctx, r)
			elapsed := time.Since(start).Milliseconds()

			switch {
			case err != nil:
				callLogger.Error().Str("tool", r.Params.Name).Int64("duration_ms", elapsed).Err(err).Msg("tool call failed")
			case result != nil && result.IsError:
				callLogger.Warn().Str("tool", r.Params.Name).Int64("duration_ms", elapsed).Msg("tool call returned error")
			default:
				callLogger.Info().Str("tool", r.Params.Name).Int64("duration_ms", elapsed).Msg("tool call")
			}
			return result, err
		}
	}
}
