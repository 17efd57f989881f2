package config_test

import (
	"testing"

	"taskflow/internal/config"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Debug || cfg.Quiet || cfg.Format != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestFromEnv_Values(t *testing.T) {
	cfg, err := config.FromEnv(envMap(map[string]string{
		config.EnvDebug:  "1",
		config.EnvQuiet:  "true",
		config.EnvFormat: "json",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Debug || !cfg.Quiet || cfg.Format != config.FormatJSON {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad bool", map[string]string{config.EnvDebug: "maybe"}},
		{"bad format", map[string]string{config.EnvFormat: "yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.FromEnv(envMap(tt.env)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFormatOr(t *testing.T) {
	cfg := &config.Config{}
	if got := cfg.FormatOr(config.FormatJSON); got != config.FormatJSON {
		t.Errorf("expected default %q, got %q", config.FormatJSON, got)
	}
	cfg.Format = config.FormatText
	if got := cfg.FormatOr(config.FormatJSON); got != config.FormatText {
		t.Errorf("expected %q, got %q", config.FormatText, got)
	}
}
