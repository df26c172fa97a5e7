// Package config loads, normalizes, and validates rechub's TOML configuration.
//
// Configuration is resolved from an explicit --config path, then
// ~/.config/rechub/config.toml, then ./rechub.toml, falling back to built-in
// defaults when no file exists. Path fields are tilde-expanded and made
// absolute during normalization.
package config
