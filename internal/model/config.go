package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// BridgeConfig holds settings for the osascript execution gateway.
type BridgeConfig struct {
	// OsascriptPath is the interpreter binary invoked for every script.
	OsascriptPath string `mapstructure:"osascript_path" yaml:"osascript_path"`

	// TimeoutSec bounds a single script execution.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// PerspectiveTimeoutSec bounds perspective materialization, which
	// has to open and query a live window and is empirically slower.
	PerspectiveTimeoutSec int `mapstructure:"perspective_timeout_sec" yaml:"perspective_timeout_sec"`

	// MaxOutputBytes caps the captured script output.
	MaxOutputBytes int64 `mapstructure:"max_output_bytes" yaml:"max_output_bytes"`
}

// OutputConfig holds rendering preferences.
type OutputConfig struct {
	// Compact emits single-line JSON instead of pretty-printed output.
	Compact bool `mapstructure:"compact" yaml:"compact"`
}

// LogConfig holds logging preferences.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Bridge BridgeConfig `mapstructure:"bridge" yaml:"bridge"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/of/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "of", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Bridge: BridgeConfig{
			OsascriptPath:         "osascript",
			TimeoutSec:            30,
			PerspectiveTimeoutSec: 60,
			MaxOutputBytes:        10 * 1024 * 1024,
		},
		Output: OutputConfig{Compact: false},
		Log:    LogConfig{Level: "warn"},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration. OF_*
// environment variables override file values.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("OF")
	v.AutomaticEnv()

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("bridge.osascript_path", "osascript")
	v.SetDefault("bridge.timeout_sec", 30)
	v.SetDefault("bridge.perspective_timeout_sec", 60)
	v.SetDefault("bridge.max_output_bytes", 10*1024*1024)
	v.SetDefault("output.compact", false)
	v.SetDefault("log.level", "warn")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
