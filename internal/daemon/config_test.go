package daemon

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want 127.0.0.1", cfg.API.Host)
	}
	if cfg.API.Port == 0 {
		t.Error("API.Port should have a default")
	}
	if cfg.TickInterval() != time.Second {
		t.Errorf("TickInterval() = %v, want 1s", cfg.TickInterval())
	}
	if cfg.PollInterval() != 2*time.Second {
		t.Errorf("PollInterval() = %v, want 2s", cfg.PollInterval())
	}
	if cfg.Telemetry.Prometheus {
		t.Error("Prometheus should be off by default")
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PLANSHIFT_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Setenv("PLANSHIFT_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.Port = 9090
	cfg.Afk.TickInterval = "500ms"
	cfg.Telemetry.Prometheus = true

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}
	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if loaded != cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
	if loaded.TickInterval() != 500*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 500ms", loaded.TickInterval())
	}
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PLANSHIFT_HOME", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[api\nport="), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() accepted malformed TOML")
	}
}

func TestParseDurationFallbacks(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", time.Second},
		{"nonsense", time.Second},
		{"-5s", time.Second},
		{"3s", 3 * time.Second},
	}
	for _, tt := range tests {
		if got := parseDuration(tt.in, time.Second); got != tt.want {
			t.Errorf("parseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
