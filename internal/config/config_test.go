package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected default base url: %q", cfg.API.BaseURL)
	}
	if cfg.Session.InactivityMinutes != 15 {
		t.Fatalf("unexpected default inactivity: %d", cfg.Session.InactivityMinutes)
	}
	if cfg.Auth.ClearSessionOnUnauthorized {
		t.Fatalf("clear_session_on_unauthorized must default to false")
	}
}

func TestLoad_FileOverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("DOCUGEN_TEST_URL", "https://api.example.com")
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := strings.Join([]string{
		"api:",
		"  base_url: ${DOCUGEN_TEST_URL}",
		"  timeout_seconds: 30",
		"session:",
		"  inactivity_minutes: 5",
		"auth:",
		"  clear_session_on_unauthorized: true",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.com" {
		t.Fatalf("env expansion failed: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout() != 30*time.Second {
		t.Fatalf("timeout not parsed: %v", cfg.API.Timeout())
	}
	if cfg.Session.InactivityLimit() != 5*time.Minute {
		t.Fatalf("inactivity limit: %v", cfg.Session.InactivityLimit())
	}
	if !cfg.Auth.ClearSessionOnUnauthorized {
		t.Fatalf("auth override not applied")
	}
	// Untouched sections keep defaults.
	if cfg.Export.Dir != "." {
		t.Fatalf("export dir default lost: %q", cfg.Export.Dir)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("session:\n  inactivity_minutes: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for inactivity_minutes=0")
	}
}
