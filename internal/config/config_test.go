package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `
upstream:
  base_url: https://data-plane.internal
  api_key: test-key
`

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig), false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPAddr != ":8080" {
		t.Fatalf("http_addr = %q", cfg.Server.HTTPAddr)
	}
	if cfg.Poll.Events != 10*time.Second {
		t.Fatalf("poll.events = %v, want 10s", cfg.Poll.Events)
	}
	if cfg.Lag.WarnAfter != 5*time.Second || cfg.Lag.BadAfter != 120*time.Second {
		t.Fatalf("lag thresholds = %v / %v", cfg.Lag.WarnAfter, cfg.Lag.BadAfter)
	}
	if cfg.Feeds.Limit != 20 {
		t.Fatalf("feeds.limit = %d", cfg.Feeds.Limit)
	}
}

func TestLoadMissingBaseURLFails(t *testing.T) {
	_, err := Load(writeConfig(t, "upstream:\n  api_key: k\n"), false)
	if err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Fatalf("err = %v, want base_url requirement", err)
	}
}

func TestLoadMissingAPIKeyFails(t *testing.T) {
	_, err := Load(writeConfig(t, "upstream:\n  base_url: https://x\n"), false)
	if err == nil || !strings.Contains(err.Error(), "api_key") {
		t.Fatalf("err = %v, want api_key requirement", err)
	}
}

func TestLoadRejectsInvertedLagThresholds(t *testing.T) {
	body := validConfig + `
lag:
  warn_after: 2m
  bad_after: 5s
`
	_, err := Load(writeConfig(t, body), false)
	if err == nil {
		t.Fatalf("expected threshold validation error")
	}
}

func TestLoadLagOverride(t *testing.T) {
	body := validConfig + `
lag:
  warn_after: 200ms
  bad_after: 1s
`
	cfg, err := Load(writeConfig(t, body), false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Lag.WarnAfter != 200*time.Millisecond || cfg.Lag.BadAfter != time.Second {
		t.Fatalf("lag override = %v / %v", cfg.Lag.WarnAfter, cfg.Lag.BadAfter)
	}
}
