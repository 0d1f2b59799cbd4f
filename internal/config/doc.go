// Package config loads, normalizes, and validates carbon configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: scan defaults, the default resolution action and target,
// and logging output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical identifiers, and clear validation errors.
package config
