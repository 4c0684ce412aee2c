package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rshade/empdash/internal/engine/pagination"
)

// configFileName is the file looked up under the config directory.
const configFileName = "config.yaml"

// Environment variables that override the config file.
const (
	EnvHome      = "EMPDASH_HOME"
	EnvPageSize  = "EMPDASH_PAGE_SIZE"
	EnvLogLevel  = "EMPDASH_LOG_LEVEL"
	EnvLogFormat = "EMPDASH_LOG_FORMAT"
	EnvData      = "EMPDASH_DATA"
)

// outputTypeFile is the logging output used when a log file is configured.
const outputTypeFile = "file"

// Config is the empdash configuration file layout.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	View    ViewConfig    `yaml:"view"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls non-interactive rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// ViewConfig controls the derivation pipeline defaults.
type ViewConfig struct {
	PageSize int `yaml:"page_size"`
}

// DataConfig lists the record source files. An empty list means the built-in
// sample directory.
type DataConfig struct {
	Files []string `yaml:"files"`
}

// LoggingConfig controls the zerolog setup.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config validation errors.
var (
	ErrInvalidOutputFormat = errors.New("output.default_format must be table, json or ndjson")
	ErrInvalidPageSize     = errors.New("view.page_size must be between 1 and 1000")
)

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Output:  OutputConfig{DefaultFormat: "table"},
		View:    ViewConfig{PageSize: pagination.DefaultPageSize},
		Data:    DataConfig{Files: []string{}},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.Logging.File = filepath.Join(dir, "logs", "empdash.log")
	}
	return cfg
}

// New returns the default configuration overlaid with the config file in the
// config directory (when present) and then with environment overrides. A
// malformed config file is reported on stderr and otherwise ignored.
func New() *Config {
	cfg := Default()

	if path, err := DefaultConfigPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", mergeErr)
				cfg = Default()
			}
		}
	}

	cfg.ApplyEnv()
	return cfg
}

// Load builds the configuration like New but reports errors instead of
// ignoring them, and applies overlayPath (the --config flag) after the default
// config file when it is non-empty. The result is validated.
func Load(overlayPath string) (*Config, error) {
	cfg := Default()

	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr == nil {
		if err = ShallowMergeYAML(cfg, path); err != nil {
			return nil, err
		}
	}

	if overlayPath != "" {
		if err = ShallowMergeYAML(cfg, overlayPath); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyEnv applies EMPDASH_* environment overrides. Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.View.PageSize = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvData); v != "" {
		c.Data.Files = filepath.SplitList(v)
	}
}

// Validate checks the values that have a closed domain.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case "table", "json", "ndjson":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	params := pagination.PaginationParams{Page: pagination.DefaultPage, PageSize: c.View.PageSize}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.View.PageSize)
	}
	return nil
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// DefaultConfigPath returns $EMPDASH_HOME/config.yaml (or ~/.empdash/config.yaml).
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
