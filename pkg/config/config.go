// Package config loads the stitch application configuration: built-in
// defaults, the optional user config file, and STITCH_* environment
// overrides, merged in that order.
package config

import (
	"strings"

	ktoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/stitch-dev/stitch/pkg/errors"
	"github.com/stitch-dev/stitch/pkg/logging"
	"github.com/stitch-dev/stitch/pkg/paths"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "STITCH_"

// Config holds the user-tunable settings.
type Config struct {
	// Marker is the directive marker token in client files.
	Marker string `koanf:"marker"`
	// Extension is the fragment file extension convention probed after
	// a symbol's explicit path. Empty disables the convention.
	Extension string `koanf:"extension"`
	// ServersRoot overrides where server directories are resolved.
	ServersRoot string `koanf:"servers_root"`
	// Color toggles styled terminal output.
	Color bool `koanf:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Marker:    "...",
		Extension: ".txt",
		Color:     true,
	}
}

// Load merges defaults, the user config file (if present) and
// environment overrides.
func Load() (Config, error) {
	log := logging.GetLogger("config")

	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"marker":       defaults.Marker,
		"extension":    defaults.Extension,
		"servers_root": defaults.ServersRoot,
		"color":        defaults.Color,
	}, "."), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrInternal, "failed to load default config")
	}

	configFile := paths.ConfigFile()
	if paths.FileExists(configFile) {
		if err := k.Load(file.Provider(configFile), ktoml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse config %s", configFile).WithDetail("path", configFile)
		}
		log.Debug().Str("path", configFile).Msg("User config loaded")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrInternal, "failed to load environment config")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}

	if cfg.ServersRoot == "" {
		cfg.ServersRoot = paths.ServersRoot()
	}
	if cfg.Marker == "" {
		cfg.Marker = defaults.Marker
	}

	return cfg, nil
}
