// Package config loads, normalizes, and validates coursebuild configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/coursebuild/config.toml or
// a project-local coursebuild.toml. The Config type centralizes every knob
// the CLI needs: export output location, draft database path, table-of-
// contents offsets, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
