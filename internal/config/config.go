package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/ebird-mcp/internal/common"
)

// ErrMissingAPIKey is returned by Validate when no eBird API key is configured.
var ErrMissingAPIKey = errors.New("eBird API key is not set (export EBIRD_API_KEY or set [ebird] api_key)")

// Config represents the server configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	EBird   EBirdConfig          `toml:"ebird"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
}

// EBirdConfig contains upstream API settings.
type EBirdConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses the configured timeout, falling back to 30s.
func (c EBirdConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// LoadFromFiles loads configuration with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Missing files are skipped; unreadable or malformed files are errors.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies EBIRD_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if key := os.Getenv("EBIRD_API_KEY"); key != "" {
		config.EBird.APIKey = key
	}
	if baseURL := os.Getenv("EBIRD_BASE_URL"); baseURL != "" {
		config.EBird.BaseURL = baseURL
	}
	if timeout := os.Getenv("EBIRD_TIMEOUT"); timeout != "" {
		config.EBird.Timeout = timeout
	}
	if level := os.Getenv("EBIRD_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if outputs := os.Getenv("EBIRD_LOG_OUTPUTS"); outputs != "" {
		config.Logging.Outputs = strings.Split(outputs, ",")
	}
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.EBird.APIKey) == "" {
		return ErrMissingAPIKey
	}
	u, err := url.Parse(c.EBird.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid eBird base URL %q", c.EBird.BaseURL)
	}
	if c.EBird.Timeout != "" {
		if _, err := time.ParseDuration(c.EBird.Timeout); err != nil {
			return fmt.Errorf("invalid eBird timeout %q: %w", c.EBird.Timeout, err)
		}
	}
	return nil
}
