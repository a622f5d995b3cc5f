package mcp

import (
	"context"
	"errors"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/ebird-mcp/internal/common"
)

func TestLoggerFromContext_FallsBackToSilent(t *testing.T) {
	assert.Same(t, silentLogger, LoggerFromContext(context.Background()))

	logger := common.NewSilentLogger()
	assert.Same(t, logger, LoggerFromContext(WithLogger(context.Background(), logger)))
}

func TestLoggingMiddleware_AttachesCallLogger(t *testing.T) {
	var seen *common.Logger
	next := func(ctx context.Context, r mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		seen = LoggerFromContext(ctx)
		return textResult("ok"), nil
	}

	req := mcpgo.CallToolRequest{}
	req.Params.Name = "get_species_list"

	result, err := LoggingMiddleware(common.NewSilentLogger())(next)(t.Context(), req)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.NotNil(t, seen)
	assert.NotSame(t, silentLogger, seen)
}

func TestLoggingMiddleware_PassesThroughResultAndError(t *testing.T) {
	mw := LoggingMiddleware(common.NewSilentLogger())
	req := mcpgo.CallToolRequest{}
	req.Params.Name = "get_checklist"

	toolErr := errorResult("Error: eBird API returned 404 Not Found for /product/checklist/view/S1")
	result, err := mw(func(ctx context.Context, r mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		return toolErr, nil
	})(t.Context(), req)
	require.NoError(t, err)
	assert.Same(t, toolErr, result)

	boom := errors.New("boom")
	result, err = mw(func(ctx context.Context, r mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		return nil, boom
	})(t.Context(), req)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result)
}
