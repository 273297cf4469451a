package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("unexpected default addr %q", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("unexpected shutdown timeout %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Share.BaseURL == "" {
		t.Error("expected a default share base url")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected defaults, got %q", cfg.Server.Addr)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  addr: \":9090\"\nhistory:\n  db_path: /tmp/test.db\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.Server.Addr)
	}
	if cfg.History.DBPath != "/tmp/test.db" {
		t.Errorf("expected /tmp/test.db, got %q", cfg.History.DBPath)
	}
	// Untouched fields keep their defaults.
	if cfg.Share.BaseURL != Default().Share.BaseURL {
		t.Errorf("share base url should keep its default, got %q", cfg.Share.BaseURL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CALCSUITE_ADDR", ":7070")
	t.Setenv("CALCSUITE_DB_PATH", "/tmp/env.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Addr != ":7070" {
		t.Errorf("expected env override :7070, got %q", cfg.Server.Addr)
	}
	if cfg.History.DBPath != "/tmp/env.db" {
		t.Errorf("expected env override, got %q", cfg.History.DBPath)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
