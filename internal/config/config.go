package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Maya    MayaConfig    `mapstructure:"maya"`
	Paths   PathsConfig   `mapstructure:"paths"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MayaConfig contains Maya interpreter and cleaner script configuration
type MayaConfig struct {
	// Executable overrides interpreter discovery when set
	Executable string `mapstructure:"executable"`
	// Script overrides the cleaner script fallback locations when set
	Script string `mapstructure:"script"`
	// VersionMin/VersionMax bound the install locations probed during discovery
	VersionMin int `mapstructure:"version_min"`
	VersionMax int `mapstructure:"version_max"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	DataDir string `mapstructure:"data_dir"`
	DBFile  string `mapstructure:"db_file"`
	LogFile string `mapstructure:"log_file"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".config", "mayasweep"))
	}
	viper.AddConfigPath(".")

	setDefaults()

	// Environment variable overrides
	viper.SetEnvPrefix("MAYASWEEP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Maya.Executable = expandPath(cfg.Maya.Executable)
	cfg.Maya.Script = expandPath(cfg.Maya.Script)
	cfg.Paths.DataDir = expandPath(cfg.Paths.DataDir)
	cfg.Paths.DBFile = expandPath(cfg.Paths.DBFile)
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)

	if cfg.Maya.VersionMin > cfg.Maya.VersionMax {
		return nil, fmt.Errorf("maya.version_min (%d) greater than maya.version_max (%d)",
			cfg.Maya.VersionMin, cfg.Maya.VersionMax)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}

	viper.SetDefault("maya.executable", "")
	viper.SetDefault("maya.script", "")
	viper.SetDefault("maya.version_min", 2020)
	viper.SetDefault("maya.version_max", 2026)

	viper.SetDefault("paths.data_dir", filepath.Join(homeDir, ".local", "share", "mayasweep"))
	viper.SetDefault("paths.db_file", filepath.Join(homeDir, ".local", "share", "mayasweep", "history.db"))
	viper.SetDefault("paths.log_file", filepath.Join(homeDir, ".local", "share", "mayasweep", "mayasweep.log"))

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.color", "auto")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
