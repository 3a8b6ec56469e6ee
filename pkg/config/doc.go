// Package config loads photosort configuration.
//
// Values are layered, later sources overriding earlier ones: embedded
// defaults, the configuration file (TOML or YAML), PHOTOSORT_* environment
// variables and finally command-line flags.
package config
