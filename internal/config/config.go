// Package config provides configuration management. Configuration files are
// HCL (or JSON with the same shape, by extension); environment variables
// override the file for deployment settings.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"finops-calc/internal/errors"
	"finops-calc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	Server  ServerConfig   `json:"server"`
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains the HTTP server settings
type ServerConfig struct {
	// Addr is the listen address, e.g. ":10000"
	Addr string `json:"addr"`

	// AllowedOrigin is the single origin echoed in CORS headers
	AllowedOrigin string `json:"allowed_origin"`
}

// fileConfig mirrors Config for HCL decoding, with every block optional.
type fileConfig struct {
	Server  *serverBlock  `hcl:"server,block"`
	Logging *loggingBlock `hcl:"logging,block"`
}

type serverBlock struct {
	Addr          *string `hcl:"addr,optional"`
	AllowedOrigin *string `hcl:"allowed_origin,optional"`
}

type loggingBlock struct {
	Level       *string `hcl:"level,optional"`
	Format      *string `hcl:"format,optional"`
	Output      *string `hcl:"output,optional"`
	Development *bool   `hcl:"development,optional"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          ":10000",
			AllowedOrigin: "https://duksh.github.io",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from an HCL or JSON file, applying defaults for
// anything the file omits. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var file fileConfig
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Config(fmt.Sprintf("failed to parse %s", path), err)
	}

	if file.Server != nil {
		if file.Server.Addr != nil {
			cfg.Server.Addr = *file.Server.Addr
		}
		if file.Server.AllowedOrigin != nil {
			cfg.Server.AllowedOrigin = *file.Server.AllowedOrigin
		}
	}
	if file.Logging != nil {
		if file.Logging.Level != nil {
			cfg.Logging.Level = *file.Logging.Level
		}
		if file.Logging.Format != nil {
			cfg.Logging.Format = *file.Logging.Format
		}
		if file.Logging.Output != nil {
			cfg.Logging.Output = *file.Logging.Output
		}
		if file.Logging.Development != nil {
			cfg.Logging.Development = *file.Logging.Development
		}
	}
	return cfg, nil
}

// ApplyEnv overlays deployment environment variables onto the configuration
func (c *Config) ApplyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if origin := os.Getenv("ALLOWED_ORIGIN"); origin != "" {
		c.Server.AllowedOrigin = origin
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}
