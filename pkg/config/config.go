package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/japaniel/devlingo/pkg/writer"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "devlingo.yaml"

// Config holds generator settings.
type Config struct {
	// OutputDir receives one JSON file per category.
	OutputDir string `yaml:"output_dir"`
	// FilePattern names category files; %s is replaced by the category.
	FilePattern string `yaml:"file_pattern"`

	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig configures the optional SQLite export.
type CatalogConfig struct {
	Path     string `yaml:"path"`     // empty disables the export
	Readings bool   `yaml:"readings"` // store kana readings for ja
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:   filepath.Join("data", "phrases"),
		FilePattern: writer.DefaultPattern,
		Catalog:     CatalogConfig{Readings: true},
		Logging:     LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DEVLINGO_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("DEVLINGO_FILE_PATTERN"); v != "" {
		c.FilePattern = v
	}
	if v := os.Getenv("DEVLINGO_CATALOG"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("DEVLINGO_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir must be set")
	}
	if err := writer.CheckPattern(c.FilePattern); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	return nil
}
