package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of environment variables read as config
	EnvPrefix = "TEMPLATIZE_"

	// EnvConfigFile points at an explicit config file
	EnvConfigFile = "TEMPLATIZE_CONFIG"

	// UserConfigFile is the config file location relative to the XDG config home
	UserConfigFile = "templatize/config.toml"
)

// Config holds the resolved settings used by the CLI.
type Config struct {
	Manifest string
	Fields   string
	Dir      string
	Env      bool
	Format   string
}

// Load builds the layered configuration. path names an explicit config
// file; when empty TEMPLATIZE_CONFIG and then the XDG config home are tried.
// A missing user file is not an error, an explicit one is.
func Load(path string) (*Config, error) {
	k, err := NewKoanf(path)
	if err != nil {
		return nil, err
	}
	return fromKoanf(k), nil
}

// NewKoanf returns the raw layered koanf instance.
func NewKoanf(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Load built-in defaults
	if err := k.Load(Bytes(defaultConfig), toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load the user config file
	explicit := path != ""
	if !explicit {
		if p := os.Getenv(EnvConfigFile); p != "" {
			path, explicit = p, true
		}
	}
	if !explicit {
		if p, err := xdg.SearchConfigFile(UserConfigFile); err == nil {
			path = p
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil || explicit {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		}
	}

	// 3. Load TEMPLATIZE_* environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return k, nil
}

// envKey maps TEMPLATIZE_RENDER_MANIFEST to render.manifest.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func fromKoanf(k *koanf.Koanf) *Config {
	return &Config{
		Manifest: k.String("render.manifest"),
		Fields:   k.String("render.fields"),
		Dir:      k.String("render.dir"),
		Env:      k.Bool("render.env"),
		Format:   k.String("output.format"),
	}
}
