//go:build !integration

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), true)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", got)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.Render.ViewportWidth != 360 {
		t.Errorf("ViewportWidth = %d, want 360", cfg.Render.ViewportWidth)
	}
	if cfg.Render.BackURL != "/" {
		t.Errorf("BackURL = %q, want /", cfg.Render.BackURL)
	}
	if cfg.QR.Level != "medium" {
		t.Errorf("QR.Level = %q, want medium", cfg.QR.Level)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("RateLimit.Window = %v, want 1m", cfg.RateLimit.Window)
	}
	if !cfg.Runtime.Dev {
		t.Error("Runtime.Dev not carried through")
	}
}

func TestLoadConfigReadsFileAndBackfills(t *testing.T) {
	path := writeFile(t, "app.yaml", `
server:
  port: 9400
log:
  level: debug
render:
  viewport_width: 414
  back_url: /wallet
rate_limit:
  enabled: true
  limit: 30
  window: 30s
redis:
  url: redis://localhost:6379
`)
	cfg, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 9400 {
		t.Errorf("Port = %d, want 9400", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Host default missing, got %q", cfg.Server.Host)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.Render.ViewportWidth != 414 || cfg.Render.BackURL != "/wallet" {
		t.Errorf("render = %d/%q", cfg.Render.ViewportWidth, cfg.Render.BackURL)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Limit != 30 || cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("rate_limit = %+v", cfg.RateLimit)
	}
	if cfg.Redis.URL != "redis://localhost:6379" {
		t.Errorf("Redis.URL = %q", cfg.Redis.URL)
	}
	if cfg.Runtime.Dev {
		t.Error("Runtime.Dev should be false")
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := writeFile(t, "bad.yaml", "server: [not a map")
	if _, err := LoadConfig(path, false); err == nil {
		t.Fatal("expected parse error for malformed yaml")
	}
}

func TestLoadConfigValidation(t *testing.T) {
	t.Run("required links without key", func(t *testing.T) {
		path := writeFile(t, "app.yaml", "links:\n  required: true\n")
		if _, err := LoadConfig(path, false); err == nil {
			t.Fatal("expected error when links.required set without signing key")
		}
	})
	t.Run("enabled limiter without limit", func(t *testing.T) {
		path := writeFile(t, "app.yaml", "rate_limit:\n  enabled: true\n  limit: 0\n")
		if _, err := LoadConfig(path, false); err == nil {
			t.Fatal("expected error when rate_limit enabled with zero limit")
		}
	})
}
