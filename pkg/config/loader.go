package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	ConfigFile   = "config"
	ConfigDir    = "radix-palette-gen"
	ConfigEnv    = "XDG_CONFIG_HOME"
	ConfigFormat = "json"
	EnvPrefix    = "RADIX_PALETTE_GEN"
	SystemDir    = "/etc"
)

// Load reads a Config from the sources documented in the package doc,
// falling back to built-in defaults when no config file is present.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile := os.Getenv("RADIX_PALETTE_GEN_CONFIG"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(ConfigFile)
		v.SetConfigType(ConfigFormat)

		v.AddConfigPath(filepath.Join(SystemDir, ConfigDir))
		if xdgConfig := os.Getenv(ConfigEnv); xdgConfig != "" {
			v.AddConfigPath(filepath.Join(xdgConfig, ConfigDir))
		}
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// UserConfigPath returns the XDG-aware path Load checks for a user config.
func UserConfigPath() string {
	xdgConfig := os.Getenv(ConfigEnv)
	return filepath.Join(xdgConfig, ConfigDir, ConfigFile+"."+ConfigFormat)
}

// SystemConfigPath returns the system-wide path Load checks for a config.
func SystemConfigPath() string {
	return filepath.Join(SystemDir, ConfigDir, ConfigFile+"."+ConfigFormat)
}
