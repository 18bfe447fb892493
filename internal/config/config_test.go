package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("listen addr: want :8080, got %s", cfg.ListenAddr)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("session ttl: want 24h, got %s", cfg.SessionTTL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("request timeout: want 30s, got %s", cfg.RequestTimeout)
	}
}

func TestLoad_YAMLFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	yaml := "listen_addr: :9000\ndata_file: /tmp/p.json\nsession_ttl: 1h\nrequest_timeout: 5s\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LISTEN_ADDR", ":9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != ":9999" {
		t.Errorf("env should win over file: want :9999, got %s", cfg.ListenAddr)
	}
	if cfg.DataFile != "/tmp/p.json" {
		t.Errorf("data file: want /tmp/p.json, got %s", cfg.DataFile)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("session ttl: want 1h, got %s", cfg.SessionTTL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("request timeout: want 5s, got %s", cfg.RequestTimeout)
	}
}

func TestLoad_RequestTimeoutFromEnv(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "90s")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RequestTimeout != 90*time.Second {
		t.Errorf("request timeout: want 90s, got %s", cfg.RequestTimeout)
	}
}

func TestLoad_MissingYAMLFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("want error for missing config file")
	}
}
