package config

import "github.com/bobmcallan/ebird-mcp/internal/common"

// DefaultBaseURL is the eBird API 2.0 root.
const DefaultBaseURL = "https://api.ebird.org/v2"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "eBird-MCP",
		},
		EBird: EBirdConfig{
			BaseURL: DefaultBaseURL,
			Timeout: "30s",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console"},
			FilePath:   "logs/ebird-mcp.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
