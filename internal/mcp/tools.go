package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/ebird-mcp/internal/common"
	"github.com/bobmcallan/ebird-mcp/internal/config"
)

// RegisterTools registers one MCP tool per catalog entry, each backed by d.
func RegisterTools(s *server.MCPServer, d Dispatcher, catalog []ToolSpec) int {
	for _, ts := range catalog {
		s.AddTool(BuildMCPTool(ts), GenericToolHandler(d, ts))
	}
	return len(catalog)
}

// NewServer builds the MCP server with the full eBird catalog and get_version.
func NewServer(cfg *config.Config, d Dispatcher, logger *common.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		cfg.Server.Name,
		config.GetVersion(),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(LoggingMiddleware(logger)),
	)

	count := RegisterTools(s, d, ValidateCatalog(Catalog(), logger))
	s.AddTool(VersionTool(), VersionToolHandler(cfg.EBird.BaseURL))

	logger.Info().
		Int("tools", count+1).
		Str("upstream", cfg.EBird.BaseURL).
		Msg("MCP server initialized")

	return s
}
