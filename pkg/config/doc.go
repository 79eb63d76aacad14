// Package config handles configuration management for reactspring.
// It layers the embedded defaults, the user's TOML config file, environment
// variables, an optional answers file and command-line flags with koanf,
// and resolves the result into a validated generation config.
package config
