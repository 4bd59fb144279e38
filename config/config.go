// Package config loads the QR Jelly configuration from an optional
// YAML file, an optional .env file and QRJELLY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/elizafairlady/qrjelly/prefs"
	"github.com/elizafairlady/qrjelly/qr"
	"github.com/elizafairlady/qrjelly/theme"
)

// DefaultPath is the config file read when no other is named.
const DefaultPath = "qrjelly.yaml"

// Config holds all application configuration values.
type Config struct {
	PrefsPath   string `yaml:"prefs_path"`
	IconPath    string `yaml:"icon_path"`
	Backend     string `yaml:"backend"`
	Level       string `yaml:"level"`
	ModuleSize  int    `yaml:"module_size"`
	Border      int    `yaml:"border"`
	PreviewSize int    `yaml:"preview_size"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Backdrop    string `yaml:"backdrop"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PrefsPath:   prefs.DefaultPath,
		IconPath:    "icons/jelly_icon.png",
		Backend:     qr.Skip2,
		Level:       "M",
		ModuleSize:  10,
		Border:      4,
		PreviewSize: 300,
		Width:       400,
		Height:      560,
		Backdrop:    "#777777",
		LogLevel:    "info",
	}
}

// Load reads the YAML file at path over the defaults; a missing file
// is not an error. The .env file at envFile, if any, is loaded into
// the environment first without replacing variables already set, and
// QRJELLY_* variables then override file values.
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: loading %s: %w", envFile, err)
		}
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("QRJELLY_PREFS"); v != "" {
		cfg.PrefsPath = v
	}
	if v := os.Getenv("QRJELLY_ICON"); v != "" {
		cfg.IconPath = v
	}
	if v := os.Getenv("QRJELLY_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("QRJELLY_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("QRJELLY_MODULE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ModuleSize = n
		}
	}
	if v := os.Getenv("QRJELLY_BORDER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Border = n
		}
	}
	if v := os.Getenv("QRJELLY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if _, err := c.Params(); err != nil {
		return err
	}
	if c.ModuleSize <= 0 {
		return fmt.Errorf("config: module_size must be positive, got %d", c.ModuleSize)
	}
	if c.Border < 0 {
		return fmt.Errorf("config: border must not be negative, got %d", c.Border)
	}
	if c.PreviewSize <= 0 || c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: sizes must be positive")
	}
	if _, err := theme.Parse(c.Backdrop); err != nil {
		return fmt.Errorf("config: backdrop: %w", err)
	}
	return nil
}

// Params returns the encoder parameters.
func (c *Config) Params() (qr.Params, error) {
	if _, err := qr.NewBackend(c.Backend); err != nil {
		return qr.Params{}, fmt.Errorf("config: %w", err)
	}
	lvl, err := qr.ParseLevel(c.Level)
	if err != nil {
		return qr.Params{}, fmt.Errorf("config: %w", err)
	}
	return qr.Params{
		Backend:    strings.ToLower(c.Backend),
		Level:      lvl,
		ModuleSize: c.ModuleSize,
		Border:     c.Border,
	}, nil
}

// Theme returns the default theme adjusted by the configuration.
func (c *Config) Theme() *theme.Theme {
	th := theme.Default()
	if b, err := theme.Parse(c.Backdrop); err == nil {
		th.Backdrop = b
	}
	th.PreviewSize = c.PreviewSize
	return th
}

// SlogLevel maps LogLevel to a slog level; unknown names mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
