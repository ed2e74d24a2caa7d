package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watch loads a Config and invokes onChange every time the backing config
// file is modified on disk, using viper's fsnotify-backed file watcher.
// This is the one concrete fsnotify consumer in a CLI-shaped module: a
// long-running host (the out-of-scope dev server) can hot-reload the
// nearly-Radix tuning window or APCA thresholds without restarting.
// Returns the initial Config and an error if nothing could be loaded. The
// returned stop function does nothing: the watch stays active for the
// life of the process.
func Watch(onChange func(*Config)) (*Config, func(), error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(ConfigFile)
	v.SetConfigType(ConfigFormat)
	v.AddConfigPath(filepath.Join(SystemDir, ConfigDir))
	if xdgConfig := os.Getenv(ConfigEnv); xdgConfig != "" {
		v.AddConfigPath(filepath.Join(xdgConfig, ConfigDir))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("unable to decode config: %w", err)
	}

	v.OnConfigChange(func(fsnotify.Event) {
		var updated Config
		if err := v.Unmarshal(&updated); err != nil {
			return
		}
		if onChange != nil {
			onChange(&updated)
		}
	})
	v.WatchConfig()

	return &cfg, func() {}, nil
}
