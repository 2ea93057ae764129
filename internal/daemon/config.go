// Package daemon manages the planshift daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all daemon configuration.
type Config struct {
	API       APIConfig       `toml:"api"`
	Afk       AfkConfig       `toml:"afk"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Logging   LoggingConfig   `toml:"logging"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// AfkConfig controls the scheduler cadences. The AFK timeout itself
// lives in the settings store, not here: it is runtime-mutable state,
// not deployment configuration.
type AfkConfig struct {
	TickInterval string `toml:"tick_interval"`
	PollInterval string `toml:"poll_interval"`
}

// TelemetryConfig controls optional observability surfaces.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 7723,
		},
		Afk: AfkConfig{
			TickInterval: "1s",
			PollInterval: "2s",
		},
		Telemetry: TelemetryConfig{
			Prometheus: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads config from ~/.planshift/config.toml, falling back
// to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(planshiftHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet, use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the config to ~/.planshift/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(planshiftHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// TickInterval returns the parsed AFK tick cadence.
func (c Config) TickInterval() time.Duration {
	return parseDuration(c.Afk.TickInterval, time.Second)
}

// PollInterval returns the parsed reconciliation poll cadence.
func (c Config) PollInterval() time.Duration {
	return parseDuration(c.Afk.PollInterval, 2*time.Second)
}

// parseDuration parses a duration string, returning a fallback on error.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// planshiftHome returns the planshift data directory.
func planshiftHome() string {
	if env := os.Getenv("PLANSHIFT_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".planshift")
}

// Home is exported for use by other packages.
func Home() string {
	return planshiftHome()
}
