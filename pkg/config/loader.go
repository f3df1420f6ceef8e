package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config represents the complete configuration structure for imagelint.
type Config struct {
	Lint LintConfig `mapstructure:"lint"`
}

// LintConfig carries the tunable analysis parameters. Pattern catalogs live
// here as data so integrators can adjust sensitivity without touching rule
// logic.
type LintConfig struct {
	MaxRunDirectives int               `mapstructure:"max_run_directives"`
	MinIgnoreRules   int               `mapstructure:"min_ignore_rules"`
	MaxFileSize      string            `mapstructure:"max_file_size"`
	HeavyImages      []string          `mapstructure:"heavy_images"`
	LightMarkers     []string          `mapstructure:"light_markers"`
	CriticalIgnores  map[string]string `mapstructure:"critical_ignores"`
	AdvisoryIgnores  map[string]string `mapstructure:"advisory_ignores"`
}

var globalViper *viper.Viper

// InitializeViper initializes the global Viper instance with config file and
// defaults. This should be called once during application initialization.
func InitializeViper(configFile string) error {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		log.Debug().Str("path", configFile).Msg("Using specified config file")
	} else {
		v.SetConfigName("imagelint")
		v.SetConfigType("yaml")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "imagelint"))
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")

		log.Debug().Msg("Searching for config file in standard locations")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No config file found, using defaults and command-line flags")
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Loaded config file")
	}

	v.SetEnvPrefix("IMAGELINT")
	v.AutomaticEnv()

	globalViper = v
	return nil
}

// GetViper returns the global Viper instance, initializing it with defaults
// if necessary.
func GetViper() *viper.Viper {
	if globalViper == nil {
		if err := InitializeViper(""); err != nil {
			log.Fatal().Err(err).Msg("Failed to auto-initialize Viper configuration")
		}
	}
	return globalViper
}

// BindFlags binds command flags to Viper configuration keys. This enables
// automatic priority handling: CLI flags > config file > defaults.
func BindFlags(cmd *cobra.Command, flagMappings map[string]string) error {
	v := GetViper()
	for flagName, viperKey := range flagMappings {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			flag = cmd.InheritedFlags().Lookup(flagName)
		}
		if flag != nil {
			if err := v.BindPFlag(viperKey, flag); err != nil {
				return fmt.Errorf("failed to bind flag %s to key %s: %w", flagName, viperKey, err)
			}
		}
	}
	return nil
}

// GetString retrieves a string value using Viper's native priority handling
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetBool retrieves a bool value using Viper's native priority handling
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}

// GetInt retrieves an int value using Viper's native priority handling
func GetInt(key string) int {
	return GetViper().GetInt(key)
}

// GetStringSlice retrieves a string slice using Viper's native priority handling
func GetStringSlice(key string) []string {
	return GetViper().GetStringSlice(key)
}

// GetStringMapString retrieves a string map using Viper's native priority handling
func GetStringMapString(key string) map[string]string {
	return GetViper().GetStringMapString(key)
}

// UnmarshalConfig unmarshals the configuration into a Config struct
func UnmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := GetViper().Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return config, nil
}

// setDefaults sets default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("lint.max_run_directives", 5)
	v.SetDefault("lint.min_ignore_rules", 3)
	v.SetDefault("lint.max_file_size", "1Mb")
	v.SetDefault("lint.heavy_images", []string{
		"ubuntu", "debian", "centos", "fedora",
		"amazonlinux", "rockylinux", "oraclelinux",
	})
	v.SetDefault("lint.light_markers", []string{
		"alpine", "slim", "scratch", "distroless", "busybox",
	})
	v.SetDefault("lint.critical_ignores", map[string]string{
		"version-control directory":  ".git",
		"dependency cache directory": "node_modules",
	})
	v.SetDefault("lint.advisory_ignores", map[string]string{
		"documentation": ".md",
		"tests":         "test",
	})
}

// Reset clears the global Viper instance. Intended for tests.
func Reset() {
	globalViper = nil
}
