// Package config provides configuration management for the palette
// synthesis engine using Viper.
//
// Configuration sources and precedence (later entries override earlier):
//  1. Built-in defaults
//  2. One config file: the path in RADIX_PALETTE_GEN_CONFIG when set;
//     otherwise the first config.json found, searching in order
//     /etc/radix-palette-gen/, $XDG_CONFIG_HOME/radix-palette-gen/, and
//     the working directory. Only that one file is read; files are not
//     merged.
//  3. Environment variables: RADIX_PALETTE_GEN_*
//
// Usage:
//
//	cfg, err := config.Load()
//	ctx := config.WithConfig(context.Background(), cfg)
//	cfg = config.FromContext(ctx)
package config
