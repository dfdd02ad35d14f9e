package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"gridview/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
	Data      DataConfig      `yaml:"data" envconfig:"DATA"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS"`
	Burst   int     `yaml:"burst" envconfig:"BURST"`
}

// DataConfig contains the data source configuration. SourcePath points at the
// primary time-indexed table (CSV, or XLSX when the extension matches);
// ProductionPath points at the secondary grouped production records.
type DataConfig struct {
	SourcePath     string `yaml:"source_path" envconfig:"SOURCE_PATH"`
	SourceSheet    string `yaml:"source_sheet" envconfig:"SOURCE_SHEET"`
	ProductionPath string `yaml:"production_path" envconfig:"PRODUCTION_PATH"`
	PreviewLimit   int    `yaml:"preview_limit" envconfig:"PREVIEW_LIMIT"`
}

// Default returns the baseline configuration before file and env overlays
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/gridview.log",
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     100,
			Burst:   50,
		},
		Data: DataConfig{
			SourcePath:     "data/open-meteo-subset.csv",
			ProductionPath: "data/production.json",
			PreviewLimit:   200,
		},
	}
}

// Load builds the configuration: defaults, then an optional YAML file
// overlay, then GRIDVIEW_-prefixed environment variables.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, errors.NewConfigError("failed to read config file", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, errors.NewConfigError("failed to parse config file", err)
			}
		}
	}

	if err := envconfig.Process("GRIDVIEW", &cfg); err != nil {
		return nil, errors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SourceIsXLSX reports whether the primary source is a spreadsheet
func (c *Config) SourceIsXLSX() bool {
	return strings.HasSuffix(strings.ToLower(c.Data.SourcePath), ".xlsx")
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.NewConfigError(fmt.Sprintf("invalid server port %d", c.Server.Port), nil)
	}
	if c.Data.PreviewLimit < 1 {
		return errors.NewConfigError("preview limit must be positive", nil)
	}
	if c.Data.SourcePath == "" {
		return errors.NewConfigError("source path is required", nil)
	}
	return nil
}
