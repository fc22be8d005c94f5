// Package config loads productive's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the full productive configuration.
type Config struct {
	// Database path; empty means the default under the user config dir.
	DBPath string `yaml:"db_path" mapstructure:"db_path"`

	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	LogFile  string `yaml:"log_file" mapstructure:"log_file"`

	Focus  FocusConfig  `yaml:"focus" mapstructure:"focus"`
	Gemini GeminiConfig `yaml:"gemini" mapstructure:"gemini"`
}

// FocusConfig configures the focus timers.
type FocusConfig struct {
	TickInterval     time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`
	DefaultCountdown int           `yaml:"default_countdown" mapstructure:"default_countdown"` // seconds
	Presets          []int         `yaml:"presets" mapstructure:"presets"`                     // minutes
}

// GeminiConfig configures the insight provider.
type GeminiConfig struct {
	APIKey  string        `yaml:"api_key,omitempty" mapstructure:"api_key"`
	Model   string        `yaml:"model" mapstructure:"model"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Focus: FocusConfig{
			TickInterval:     time.Second,
			DefaultCountdown: 1500,
			Presets:          []int{15, 25, 50},
		},
		Gemini: GeminiConfig{
			Model:   "gemini-2.5-flash",
			Timeout: 30 * time.Second,
		},
	}
}

// Dir returns <user config dir>/productive.
func Dir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "productive"), nil
}

// DefaultPath returns the config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
// PRODUCTIVE_* environment variables override file values
// (PRODUCTIVE_FOCUS_TICK_INTERVAL for focus.tick_interval); the API key also
// falls back to GEMINI_API_KEY and API_KEY.
func Load(path string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("PRODUCTIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("focus.tick_interval", def.Focus.TickInterval)
	v.SetDefault("focus.default_countdown", def.Focus.DefaultCountdown)
	v.SetDefault("focus.presets", def.Focus.Presets)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", def.Gemini.Model)
	v.SetDefault("gemini.timeout", def.Gemini.Timeout)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Gemini.APIKey == "" {
		for _, name := range []string{"GEMINI_API_KEY", "API_KEY"} {
			if key := os.Getenv(name); key != "" {
				cfg.Gemini.APIKey = key
				break
			}
		}
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the timers and the provider cannot work with.
func (c *Config) Validate() error {
	if c.Focus.TickInterval <= 0 {
		return fmt.Errorf("focus.tick_interval must be positive, got %s", c.Focus.TickInterval)
	}
	if c.Focus.DefaultCountdown <= 0 {
		return fmt.Errorf("focus.default_countdown must be positive, got %d", c.Focus.DefaultCountdown)
	}
	for _, m := range c.Focus.Presets {
		if m <= 0 {
			return fmt.Errorf("focus.presets: invalid preset %d", m)
		}
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be positive, got %s", c.Gemini.Timeout)
	}
	return nil
}

// WriteDefault writes the default configuration to path, creating its
// directory. An existing file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := "# productive configuration\n# The Gemini API key may also come from GEMINI_API_KEY.\n"
	return os.WriteFile(path, append([]byte(header), data...), 0o600)
}
