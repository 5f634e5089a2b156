// ABOUTME: Configuration loading and management for the codex client
// ABOUTME: Viper-backed YAML with defaults, env overrides, and XDG path expansion

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lauraanormann/codex/internal/xdg"
)

type Config struct {
	Relay   RelayConfig   `mapstructure:"relay" yaml:"relay"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	Input   InputConfig   `mapstructure:"input" yaml:"input"`
	History HistoryConfig `mapstructure:"history" yaml:"history"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

type RelayConfig struct {
	URL               string `mapstructure:"url" yaml:"url"`
	ReconnectAttempts int    `mapstructure:"reconnect_attempts" yaml:"reconnect_attempts"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

type UIConfig struct {
	Theme            string `mapstructure:"theme" yaml:"theme"`
	ChatHistoryLimit int    `mapstructure:"chat_history_limit" yaml:"chat_history_limit"`
}

type InputConfig struct {
	ComposerHeight int `mapstructure:"composer_height" yaml:"composer_height"`
}

type HistoryConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Level   string `mapstructure:"level" yaml:"level"`
	File    string `mapstructure:"file" yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Relay: RelayConfig{
			URL:               "ws://localhost:8081",
			ReconnectAttempts: 5,
			TimeoutSeconds:    30,
		},
		UI: UIConfig{
			Theme:            "default",
			ChatHistoryLimit: 1000,
		},
		Input: InputConfig{
			ComposerHeight: 4,
		},
		History: HistoryConfig{
			Path: "$XDG_DATA_HOME/codex/history.db",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			File:    "$XDG_CACHE_HOME/codex/codex.log",
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome(), "config.yaml")
}

// Load reads the config at path, writing defaults there first when the file
// does not exist. Env vars prefixed CODEX_ override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := saveDefault(cfg, path); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("CODEX")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Validate()
	return cfg, nil
}

func (c *Config) Validate() {
	if c.UI.ChatHistoryLimit < 100 {
		c.UI.ChatHistoryLimit = 100
	}
	if c.UI.ChatHistoryLimit > 10000 {
		c.UI.ChatHistoryLimit = 10000
	}
	if c.Input.ComposerHeight < 1 {
		c.Input.ComposerHeight = 1
	}
	if c.Input.ComposerHeight > 10 {
		c.Input.ComposerHeight = 10
	}

	c.History.Path = xdg.ExpandPath(c.History.Path)
	c.Logging.File = xdg.ExpandPath(c.Logging.File)
}

func saveDefault(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
