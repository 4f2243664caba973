package logger

import (
	"testing"

	"github.com/quantfold/ratingkit/pkg/config"
	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "debug",
		LogFormat: "json",
	}

	log := New(cfg)
	if log == nil {
		t.Fatal("New() returned nil")
	}

	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("Expected global level debug, got %s", zerolog.GlobalLevel())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWithFields(t *testing.T) {
	cfg := &config.Config{Env: "development", LogLevel: "info", LogFormat: "json"}
	log := New(cfg)

	child := log.WithFields(map[string]interface{}{"provider": "SP", "rows": 3})
	if child == nil {
		t.Fatal("WithFields() returned nil")
	}
	if child == log {
		t.Error("WithFields() should return a new logger")
	}
}
