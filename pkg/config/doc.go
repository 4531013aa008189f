// Package config handles configuration management for cowsay.
// It supports loading configuration from multiple sources including
// embedded defaults, TOML or YAML user files, environment variables, and
// command-line flags.
package config
