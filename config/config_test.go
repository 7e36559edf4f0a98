package config

import (
	"testing"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want an error without JWT_SECRET")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want default 8080", cfg.Server.Port)
	}
	if cfg.JWT.ExpirationHours != 24*7 {
		t.Errorf("ExpirationHours = %d, want one week", cfg.JWT.ExpirationHours)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRATION_HOURS", "48")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if cfg.JWT.ExpirationHours != 48 {
		t.Errorf("ExpirationHours = %d", cfg.JWT.ExpirationHours)
	}
	if cfg.JWT.SigningKey != "test-secret" {
		t.Errorf("SigningKey = %q", cfg.JWT.SigningKey)
	}
}
