// Package config loads the client configuration from a YAML file with
// environment variable expansion. Missing files fall back to defaults so a
// fresh install works against a local backend without any setup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Auth    AuthConfig    `yaml:"auth"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig holds the backend endpoint settings.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds applies to every outbound call. Zero means the
	// transport default.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

func (c *APIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.TimeoutSeconds, validation.Min(0)),
	)
}

func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig holds the inactivity watchdog settings.
type SessionConfig struct {
	InactivityMinutes int `yaml:"inactivity_minutes"`
}

func (c *SessionConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.InactivityMinutes, validation.Required, validation.Min(1)),
	)
}

func (c SessionConfig) InactivityLimit() time.Duration {
	return time.Duration(c.InactivityMinutes) * time.Minute
}

// AuthConfig holds authorization-failure policy.
type AuthConfig struct {
	// ClearSessionOnUnauthorized controls whether a 401 during wizard
	// actions also clears the stored session, or only forces navigation
	// back to login (the historical behavior, allowing a silent retry).
	ClearSessionOnUnauthorized bool `yaml:"clear_session_on_unauthorized"`
}

// ExportConfig holds where exported documents are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

func (c *ExportConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// LogConfig holds file logging settings. An empty File disables logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.In("debug", "info", "warn", "error")),
	)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.Export.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		API:     APIConfig{BaseURL: "http://localhost:8000"},
		Session: SessionConfig{InactivityMinutes: 15},
		Export:  ExportConfig{Dir: "."},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path, expands ${ENV} references, applies it on
// top of the defaults and validates the result. A missing file is not an
// error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// DefaultPath is the per-user config file location.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "docugen.yaml"
	}
	return filepath.Join(base, "docugen", "config.yaml")
}

// StateDir is where the client keeps its own state (credentials, logs).
// Callers must create it before writing into it.
func StateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".docugen"
	}
	return filepath.Join(base, "docugen")
}
