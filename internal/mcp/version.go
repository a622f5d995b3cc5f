package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/ebird-mcp/internal/config"
)

// versionInfo is the get_version payload.
type versionInfo struct {
	Version  string `json:"version"`
	Build    string `json:"build"`
	Commit   string `json:"commit"`
	Upstream string `json:"upstream"`
}

// VersionTool returns the get_version tool definition.
func VersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the eBird MCP server version and the eBird API endpoint it talks to. Does not call eBird."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// VersionToolHandler reports build info for this server.
func VersionToolHandler(upstream string) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := json.MarshalIndent(versionInfo{
			Version:  config.GetVersion(),
			Build:    config.GetBuild(),
			Commit:   config.GetGitCommit(),
			Upstream: upstream,
		}, "", "  ")
		if err != nil {
			return errorResult("failed to marshal version info"), nil
		}
		return textResult(string(out)), nil
	}
}
