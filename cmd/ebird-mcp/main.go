// Command ebird-mcp exposes the eBird API 2.0 as MCP tools over stdio.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/ebird-mcp/internal/common"
	"github.com/bobmcallan/ebird-mcp/internal/config"
	"github.com/bobmcallan/ebird-mcp/internal/ebird"
	"github.com/bobmcallan/ebird-mcp/internal/mcp"
)

// Hooks replaced in tests.
var (
	newServer = mcp.NewServer
	serve     = func(s *server.MCPServer, stderr io.Writer) error {
		return server.ServeStdio(s, server.WithErrorLogger(log.New(stderr, "ebird-mcp: ", log.LstdFlags)))
	}
)

func main() {
	configFile := flag.String("config", "ebird-mcp.toml", "Path to config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(config.GetFullVersion())
		return
	}

	os.Exit(run(*configFile, os.Stderr))
}

// run loads configuration and serves MCP on stdio until stdin closes.
// Nothing but protocol frames may be written to stdout.
func run(configPath string, stderr io.Writer) int {
	cfg, err := config.LoadFromFiles(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "ebird-mcp: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintln(stderr, "ebird-mcp: EBIRD_API_KEY is not set. Request a key at https://ebird.org/api/keygen and export it before starting the server.")
			return 1
		}
		fmt.Fprintf(stderr, "ebird-mcp: invalid configuration: %v\n", err)
		return 1
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)
	client := ebird.NewClient(cfg.EBird, cfg.EBird.APIKey, logger)
	s := newServer(cfg, client, logger)

	logger.Info().
		Str("version", config.GetVersion()).
		Str("upstream", client.BaseURL()).
		Msg("serving MCP on stdio")

	if err := serve(s, stderr); err != nil {
		logger.Error().Err(err).Msg("stdio server stopped")
		fmt.Fprintf(stderr, "ebird-mcp: stdio server error: %v\n", err)
		return 1
	}
	return 0
}
