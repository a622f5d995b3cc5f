package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Dispatcher performs one upstream GET. *ebird.Client implements it.
type Dispatcher interface {
	Call(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
}

// GenericToolHandler routes an MCP tool call to the eBird endpoint described by ts.
// Invalid arguments are rejected before anything is sent upstream.
func GenericToolHandler(d Dispatcher, ts ToolSpec) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := LoggerFromContext(ctx)

		req, err := BuildRequest(ts, r.GetArguments())
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				logger.Debug().Str("tool", ts.Name).Str("param", vErr.Param).Str("reason", vErr.Reason).Msg("argument rejected")
			}
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		logger.Debug().Str("tool", ts.Name).Str("url", req.URL()).Msg("dispatching tool call")

		body, err := d.Call(ctx, req.Path, req.Query)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		text, err := prettyJSON(body)
		if err != nil {
			return errorResult(fmt.Sprintf("Error formatting response: %v", err)), nil
		}
		return textResult(text), nil
	}
}
