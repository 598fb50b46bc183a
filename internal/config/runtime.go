// Package config provides centralized configuration for Lifedash runtime values.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is the application name used for config and state directories.
const AppName = "lifedash"

// MinAuthDelay is the lowest simulated latency the mock auth gate accepts.
const MinAuthDelay = time.Second

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Server configuration for the mock auth endpoint
	Server ServerConfig `yaml:"server"`

	// Auth configuration shared by the gate and the client
	Auth AuthConfig `yaml:"auth"`

	// Hold configuration for press-and-hold metric editors
	Hold HoldConfig `yaml:"hold"`

	// Dashboard configuration
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Addr is the listen address.
	// Default: 127.0.0.1:8787
	Addr string `yaml:"addr"`

	// ReadTimeout bounds reading a request.
	// Default: 10s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout bounds writing a response. It must exceed Auth.Delay.
	// Default: 15s
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// AuthConfig holds mock authentication configuration.
type AuthConfig struct {
	// Delay is the simulated latency before credentials are evaluated.
	// Values below MinAuthDelay are raised to it.
	// Default: 1s
	Delay time.Duration `yaml:"delay"`

	// ServerURL is the base URL the login client talks to.
	// Default: http://127.0.0.1:8787
	ServerURL string `yaml:"server_url"`

	// ClientTimeout is the HTTP client timeout for login requests.
	// Default: 10s
	ClientTimeout time.Duration `yaml:"client_timeout"`
}

// HoldConfig holds press-and-hold timer configuration.
type HoldConfig struct {
	// Delay is the time before the first repeat fires.
	// Default: 400ms
	Delay time.Duration `yaml:"delay"`

	// Interval is the time between repeats once holding.
	// Default: 120ms
	Interval time.Duration `yaml:"interval"`
}

// DashboardConfig holds dashboard defaults.
type DashboardConfig struct {
	// RefreshInterval is how often the dashboard clock ticks.
	// Default: 1s
	RefreshInterval time.Duration `yaml:"refresh_interval"`

	// WaterGoal is the daily glasses-of-water target.
	// Default: 8
	WaterGoal int `yaml:"water_goal"`

	// StepsGoal is the daily steps target.
	// Default: 10000
	StepsGoal int `yaml:"steps_goal"`
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Server: ServerConfig{
			Addr:         "127.0.0.1:8787",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Auth: AuthConfig{
			Delay:         MinAuthDelay,
			ServerURL:     "http://127.0.0.1:8787",
			ClientTimeout: 10 * time.Second,
		},
		Hold: HoldConfig{
			Delay:    400 * time.Millisecond,
			Interval: 120 * time.Millisecond,
		},
		Dashboard: DashboardConfig{
			RefreshInterval: time.Second,
			WaterGoal:       8,
			StepsGoal:       10000,
		},
	}
}

// DefaultPath returns the default config file path under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// Load builds a configuration from defaults, the YAML file at path (if it
// exists) and environment overrides, in that order.
func Load(path string) (*RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	cfg.loadFromEnv()
	return cfg, nil
}

// LoadFile merges the YAML file at path into c. A missing file is not an error.
func (c *RuntimeConfig) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	c.normalize()
	return nil
}

// normalize enforces invariants that no source may override.
func (c *RuntimeConfig) normalize() {
	if c.Auth.Delay < MinAuthDelay {
		c.Auth.Delay = MinAuthDelay
	}
	if c.Hold.Interval <= 0 {
		c.Hold.Interval = DefaultRuntimeConfig().Hold.Interval
	}
	if c.Hold.Delay < 0 {
		c.Hold.Delay = 0
	}
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// Server configuration
	if v := os.Getenv("LIFEDASH_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LIFEDASH_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Server.ReadTimeout = d
		}
	}
	if v := os.Getenv("LIFEDASH_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Server.WriteTimeout = d
		}
	}

	// Auth configuration
	if v := os.Getenv("LIFEDASH_AUTH_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Auth.Delay = d
		}
	}
	if v := os.Getenv("LIFEDASH_SERVER_URL"); v != "" {
		c.Auth.ServerURL = v
	}
	if v := os.Getenv("LIFEDASH_CLIENT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Auth.ClientTimeout = d
		}
	}

	// Hold configuration
	if v := os.Getenv("LIFEDASH_HOLD_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Hold.Delay = d
		}
	}
	if v := os.Getenv("LIFEDASH_HOLD_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Hold.Interval = d
		}
	}

	// Dashboard configuration
	if v := os.Getenv("LIFEDASH_WATER_GOAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Dashboard.WaterGoal = n
		}
	}
	if v := os.Getenv("LIFEDASH_STEPS_GOAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Dashboard.StepsGoal = n
		}
	}

	c.normalize()
}
