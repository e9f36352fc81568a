// Package config loads layoutfocus settings from defaults, an optional TOML
// file and LAYOUTFOCUS_* environment variables.
package config
