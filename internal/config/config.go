// Package config loads the optional YAML settings file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-audio-levels/internal/chart"
	"github.com/tphakala/go-audio-levels/internal/logger"
)

// Config is the top-level settings structure.
type Config struct {
	Chart ChartConfig `yaml:"chart"`
	Log   LogConfig   `yaml:"log"`
}

// ChartConfig controls chart output.
type ChartConfig struct {
	OutputDir    string  `yaml:"output_dir"`
	Format       string  `yaml:"format"`
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads a YAML file. ${VAR} references are expanded from the
// environment before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	expanded := os.Expand(string(data), os.Getenv)

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	setDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Chart.OutputDir == "" {
		cfg.Chart.OutputDir = "."
	} else if strings.HasPrefix(cfg.Chart.OutputDir, "~/") {
		if home, _ := os.UserHomeDir(); home != "" {
			cfg.Chart.OutputDir = home + cfg.Chart.OutputDir[1:]
		}
	}
	if cfg.Chart.Format == "" {
		cfg.Chart.Format = chart.DefaultFormat
	}
	if cfg.Chart.WidthInches == 0 {
		cfg.Chart.WidthInches = chart.DefaultWidthInches
	}
	if cfg.Chart.HeightInches == 0 {
		cfg.Chart.HeightInches = chart.DefaultHeightInches
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
}

// Validate checks values that setDefaults cannot repair.
func (c *Config) Validate() error {
	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g in", c.Chart.WidthInches, c.Chart.HeightInches)
	}
	if _, err := chart.New(c.ChartOptions()); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ChartOptions converts the chart section to renderer options.
func (c *Config) ChartOptions() chart.Options {
	return chart.Options{
		OutputDir:    c.Chart.OutputDir,
		Format:       c.Chart.Format,
		WidthInches:  c.Chart.WidthInches,
		HeightInches: c.Chart.HeightInches,
	}
}

// LoggerConfig converts the log section to logger settings.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
	}
}
