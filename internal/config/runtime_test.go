package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	// Server defaults
	if cfg.Server.Addr != "127.0.0.1:8787" {
		t.Errorf("expected Server.Addr = 127.0.0.1:8787, got %q", cfg.Server.Addr)
	}
	if cfg.Server.WriteTimeout <= cfg.Auth.Delay {
		t.Errorf("expected Server.WriteTimeout (%v) to exceed Auth.Delay (%v)", cfg.Server.WriteTimeout, cfg.Auth.Delay)
	}

	// Auth defaults
	if cfg.Auth.Delay != time.Second {
		t.Errorf("expected Auth.Delay = 1s, got %v", cfg.Auth.Delay)
	}
	if cfg.Auth.ServerURL != "http://127.0.0.1:8787" {
		t.Errorf("expected Auth.ServerURL = http://127.0.0.1:8787, got %q", cfg.Auth.ServerURL)
	}

	// Hold defaults
	if cfg.Hold.Delay != 400*time.Millisecond {
		t.Errorf("expected Hold.Delay = 400ms, got %v", cfg.Hold.Delay)
	}
	if cfg.Hold.Interval != 120*time.Millisecond {
		t.Errorf("expected Hold.Interval = 120ms, got %v", cfg.Hold.Interval)
	}

	// Dashboard defaults
	if cfg.Dashboard.WaterGoal != 8 {
		t.Errorf("expected Dashboard.WaterGoal = 8, got %d", cfg.Dashboard.WaterGoal)
	}
	if cfg.Dashboard.StepsGoal != 10000 {
		t.Errorf("expected Dashboard.StepsGoal = 10000, got %d", cfg.Dashboard.StepsGoal)
	}
}

func TestGlobalConfigExists(t *testing.T) {
	if Global == nil {
		t.Fatal("Global config should not be nil")
	}
}

func TestConfigLoadFromEnv(t *testing.T) {
	t.Setenv("LIFEDASH_ADDR", ":9999")
	t.Setenv("LIFEDASH_AUTH_DELAY", "1500ms")
	t.Setenv("LIFEDASH_HOLD_INTERVAL", "50ms")
	t.Setenv("LIFEDASH_STEPS_GOAL", "12000")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Server.Addr != ":9999" {
		t.Errorf("expected Server.Addr = :9999 from env, got %q", cfg.Server.Addr)
	}
	if cfg.Auth.Delay != 1500*time.Millisecond {
		t.Errorf("expected Auth.Delay = 1.5s from env, got %v", cfg.Auth.Delay)
	}
	if cfg.Hold.Interval != 50*time.Millisecond {
		t.Errorf("expected Hold.Interval = 50ms from env, got %v", cfg.Hold.Interval)
	}
	if cfg.Dashboard.StepsGoal != 12000 {
		t.Errorf("expected Dashboard.StepsGoal = 12000 from env, got %d", cfg.Dashboard.StepsGoal)
	}
}

func TestConfigLoadFromEnvInvalidValues(t *testing.T) {
	t.Setenv("LIFEDASH_READ_TIMEOUT", "invalid")
	t.Setenv("LIFEDASH_WATER_GOAL", "-3")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("expected Server.ReadTimeout = 10s (default), got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Dashboard.WaterGoal != 8 {
		t.Errorf("expected Dashboard.WaterGoal = 8 (default), got %d", cfg.Dashboard.WaterGoal)
	}
}

func TestAuthDelayNeverBelowMinimum(t *testing.T) {
	t.Setenv("LIFEDASH_AUTH_DELAY", "10ms")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Auth.Delay != MinAuthDelay {
		t.Errorf("expected Auth.Delay clamped to %v, got %v", MinAuthDelay, cfg.Auth.Delay)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`server:
  addr: "0.0.0.0:9000"
auth:
  delay: 2s
hold:
  interval: 80ms
dashboard:
  water_goal: 10
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("expected Server.Addr from file, got %q", cfg.Server.Addr)
	}
	if cfg.Auth.Delay != 2*time.Second {
		t.Errorf("expected Auth.Delay = 2s from file, got %v", cfg.Auth.Delay)
	}
	if cfg.Hold.Interval != 80*time.Millisecond {
		t.Errorf("expected Hold.Interval = 80ms from file, got %v", cfg.Hold.Interval)
	}
	if cfg.Dashboard.WaterGoal != 10 {
		t.Errorf("expected Dashboard.WaterGoal = 10 from file, got %d", cfg.Dashboard.WaterGoal)
	}
	// Untouched values keep their defaults.
	if cfg.Dashboard.StepsGoal != 10000 {
		t.Errorf("expected Dashboard.StepsGoal default, got %d", cfg.Dashboard.StepsGoal)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:8787" {
		t.Errorf("expected defaults, got %q", cfg.Server.Addr)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestDefaultPath(t *testing.T) {
	if filepath.Base(DefaultPath()) != "config.yaml" {
		t.Errorf("unexpected default path %q", DefaultPath())
	}
}
