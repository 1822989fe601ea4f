// Package config handles configuration management for templatize.
// It layers embedded TOML defaults, an optional user config file in the XDG
// config home, and TEMPLATIZE_* environment variables. Command-line flags
// are applied on top by the CLI.
package config
