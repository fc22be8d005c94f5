package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Focus.TickInterval != time.Second {
		t.Errorf("Expected 1s tick, got %s", cfg.Focus.TickInterval)
	}
	if cfg.Focus.DefaultCountdown != 1500 {
		t.Errorf("Expected 1500s countdown, got %d", cfg.Focus.DefaultCountdown)
	}
	if !reflect.DeepEqual(cfg.Focus.Presets, []int{15, 25, 50}) {
		t.Errorf("Unexpected presets %v", cfg.Focus.Presets)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Unexpected model %q", cfg.Gemini.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `db_path: /tmp/p.db
focus:
  tick_interval: 500ms
  presets: [10, 20]
gemini:
  model: gemini-test
  api_key: from-file
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "/tmp/p.db" {
		t.Errorf("db_path = %q", cfg.DBPath)
	}
	if cfg.Focus.TickInterval != 500*time.Millisecond {
		t.Errorf("tick_interval = %s", cfg.Focus.TickInterval)
	}
	if !reflect.DeepEqual(cfg.Focus.Presets, []int{10, 20}) {
		t.Errorf("presets = %v", cfg.Focus.Presets)
	}
	// Unset keys keep their defaults.
	if cfg.Focus.DefaultCountdown != 1500 {
		t.Errorf("default_countdown = %d", cfg.Focus.DefaultCountdown)
	}
	if cfg.Gemini.Model != "gemini-test" || cfg.Gemini.APIKey != "from-file" {
		t.Errorf("gemini = %+v", cfg.Gemini)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PRODUCTIVE_LOG_LEVEL", "debug")
	t.Setenv("PRODUCTIVE_GEMINI_MODEL", "env-model")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "fallback-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q", cfg.LogLevel)
	}
	if cfg.Gemini.Model != "env-model" {
		t.Errorf("model = %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.APIKey != "fallback-key" {
		t.Errorf("api key = %q", cfg.Gemini.APIKey)
	}
}

func TestLoadGeminiKeyPrecedence(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gemini")
	t.Setenv("API_KEY", "generic")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gemini.APIKey != "gemini" {
		t.Errorf("api key = %q, want gemini", cfg.Gemini.APIKey)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("focus:\n  default_countdown: 0\n"), 0o644)

	if _, err := Load(path); err == nil {
		t.Fatal("Expected validation error")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("focus: [unclosed"), 0o644)

	if _, err := Load(path); err == nil {
		t.Fatal("Expected parse error")
	}
}

func TestWriteDefault(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if !strings.Contains(string(content), "tick_interval: 1s") {
		t.Errorf("Expected duration written as string:\n%s", content)
	}
	if strings.Contains(string(content), "api_key") {
		t.Error("Empty api key should be omitted")
	}

	// The written file loads back to the defaults.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Round trip mismatch: %+v", cfg)
	}

	if err := WriteDefault(path); err == nil {
		t.Error("Expected error overwriting existing config")
	}
}
