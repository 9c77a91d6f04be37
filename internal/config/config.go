// Package config loads twist-mcp configuration from TOML files with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/twist-mcp/internal/common"
)

// Config holds all twist-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Twist   TwistConfig          `toml:"twist"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// TwistConfig holds Twist API client configuration.
type TwistConfig struct {
	BaseURL     string `toml:"base_url"`
	APIToken    string `toml:"api_token"`
	WorkspaceID string `toml:"workspace_id"`
	Timeout     string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *TwistConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Twist-MCP",
			Port: "4280",
		},
		Twist: TwistConfig{
			BaseURL: "https://api.twist.com/api/v3",
			Timeout: "30s",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/twist-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// Load loads configuration from files with environment overrides.
// Later files override earlier files; missing files are skipped.
func Load(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies TWIST_* environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if token := os.Getenv("TWIST_API_TOKEN"); token != "" {
		config.Twist.APIToken = token
	}
	if ws := os.Getenv("TWIST_WORKSPACE_ID"); ws != "" {
		config.Twist.WorkspaceID = ws
	}
	if url := os.Getenv("TWIST_BASE_URL"); url != "" {
		config.Twist.BaseURL = url
	}
	if port := os.Getenv("TWIST_MCP_PORT"); port != "" {
		config.Server.Port = port
	}
	if level := os.Getenv("TWIST_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// Validate checks that the configuration is usable. The API token is the
// only hard requirement; tools that need a workspace report their own error
// when workspace_id is absent.
func (c *Config) Validate() error {
	if c.Twist.APIToken == "" {
		return fmt.Errorf("TWIST_API_TOKEN environment variable is required")
	}
	return nil
}
