// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for stepwise.
type Config struct {
	IDPrefix  string `mapstructure:"id_prefix" yaml:"id_prefix"`
	DataDir   string `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFile   string `mapstructure:"log_file" yaml:"log_file"`
	Journal   bool   `mapstructure:"journal" yaml:"journal"`
	HooksFile string `mapstructure:"hooks_file" yaml:"hooks_file"`
	MCPPort   int    `mapstructure:"mcp_port" yaml:"mcp_port"`
}

// Default configuration values.
const (
	DefaultIDPrefix  = "wizard-page-"
	DefaultDataDir   = ".stepwise"
	DefaultHooksFile = ".stepwise.hooks.yml"
)

// keys lists every config key bound to a STEPWISE_ environment variable.
var keys = []string{"id_prefix", "data_dir", "log_level", "log_file", "journal", "hooks_file", "mcp_port"}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("stepwise")

	v.SetDefault("id_prefix", DefaultIDPrefix)
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("journal", true)
	v.SetDefault("hooks_file", DefaultHooksFile)
	v.SetDefault("mcp_port", 0)

	v.SetEnvPrefix("STEPWISE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit bindings so bools and ints parse from the environment
	for _, key := range keys {
		if err := v.BindEnv(key, EnvName(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Project config merges on top of the global one
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// EnvName returns the environment variable bound to a config key.
func EnvName(key string) string {
	return "STEPWISE_" + strings.ToUpper(key)
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/stepwise/stepwise.yml or $XDG_CONFIG_HOME/stepwise/stepwise.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stepwise", "stepwise.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stepwise", "stepwise.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "stepwise.yml"
}

// JournalDir returns the directory the event journal is stored under.
func (c *Config) JournalDir() string {
	return filepath.Join(c.DataDir, "data")
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
