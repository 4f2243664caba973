package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8089" {
		t.Errorf("Expected Port to be 8089, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Strategy != "base" {
		t.Errorf("Expected Strategy to be base, got %s", cfg.Strategy)
	}

	if cfg.OutputProvider != "S&P" {
		t.Errorf("Expected OutputProvider to be S&P, got %s", cfg.OutputProvider)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	// Set custom environment variables
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("STRATEGY", "worst")
	os.Setenv("DEFAULT_PROVIDER", "Moody's")
	os.Setenv("API_RATE_LIMIT", "10")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("STRATEGY")
		os.Unsetenv("DEFAULT_PROVIDER")
		os.Unsetenv("API_RATE_LIMIT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Strategy != "worst" {
		t.Errorf("Expected Strategy to be worst, got %s", cfg.Strategy)
	}

	if cfg.DefaultProvider != "Moody's" {
		t.Errorf("Expected DefaultProvider to be Moody's, got %s", cfg.DefaultProvider)
	}

	if cfg.RateLimit != 10 {
		t.Errorf("Expected RateLimit to be 10, got %f", cfg.RateLimit)
	}
}

func TestLoadRejectsInvalidStrategy(t *testing.T) {
	os.Setenv("STRATEGY", "optimistic")
	defer os.Unsetenv("STRATEGY")

	if _, err := Load(); err == nil {
		t.Error("expected Load() to fail for invalid STRATEGY")
	}
}
