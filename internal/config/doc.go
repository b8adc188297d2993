// Package config loads, normalizes, and validates tabular configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files resolved from the -c flag, the user config
// directory, or a project-local tabular.toml. Always obtain settings through
// this package so downstream code receives sanitized paths and canonical
// values.
package config
