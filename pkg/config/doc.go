// Package config handles configuration management for gcroots.
//
// Configuration is layered with koanf, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file
//  3. the store environment: NIX_STATE_DIR and USER
//  4. GCROOTS_ environment variables
//  5. explicit overrides, usually command-line flags
//
// This is the only package that reads the process environment for settings;
// everything downstream receives resolved values.
package config
