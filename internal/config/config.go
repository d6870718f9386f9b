package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	Source SourceConfig `yaml:"source"`
	View   ViewConfig   `yaml:"view"`
	Log    LogConfig    `yaml:"log"`
}

// SourceConfig selects where records are loaded from.
type SourceConfig struct {
	// Driver is "fixture" (YAML file, or the bundled sample when Path is
	// empty) or "sqlite".
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// ViewConfig tunes the listing views.
type ViewConfig struct {
	PageSize  int    `yaml:"page_size"`
	Collation string `yaml:"collation"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables.
func Load() (Config, error) {
	cfg := Config{
		Source: SourceConfig{
			Driver: "fixture",
		},
		View: ViewConfig{
			PageSize:  10,
			Collation: "en",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("CASEDESK_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if driver := os.Getenv("CASEDESK_SOURCE_DRIVER"); driver != "" {
		cfg.Source.Driver = driver
	}
	if path := os.Getenv("CASEDESK_SOURCE_PATH"); path != "" {
		cfg.Source.Path = path
	}
	if sizeStr := os.Getenv("CASEDESK_PAGE_SIZE"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CASEDESK_PAGE_SIZE: %w", err)
		}
		cfg.View.PageSize = size
	}
	if collation := os.Getenv("CASEDESK_COLLATION"); collation != "" {
		cfg.View.Collation = collation
	}
	if level := os.Getenv("CASEDESK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Source.Driver != "fixture" && cfg.Source.Driver != "sqlite" {
		return Config{}, fmt.Errorf("unknown source driver %q", cfg.Source.Driver)
	}
	if cfg.Source.Driver == "sqlite" && cfg.Source.Path == "" {
		return Config{}, fmt.Errorf("sqlite source requires a path")
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
