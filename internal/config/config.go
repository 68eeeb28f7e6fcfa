// Package config defines the urlbridge domain configuration: process-wide
// settings (external URL prefixes among them), per-blueprint URL prefixes,
// and logging options. Configuration is loaded once at startup from TOML and
// never mutated afterwards, so reads are safe from any goroutine.
package config

import (
	"fmt"
	"maps"
)

// Version constants
const (
	VersionLatest  = "v1"
	VersionUnknown = "unknown"
)

// Config is the top-level domain configuration
type Config struct {
	Version string
	Logging LoggingConfig

	// Settings is the process-wide key/value store. External URL prefixes
	// for the current and the mirrored application live here under keys
	// chosen by the hosting application.
	Settings map[string]string

	// BlueprintPrefixes maps a blueprint name to the URL prefix its routes
	// are mounted under. Blueprints without an entry mount at the root.
	BlueprintPrefixes map[string]string
}

// Setting returns the value for a settings key. A missing key is an error,
// wrapped around ErrSettingNotFound; there is no default substitution.
func (c *Config) Setting(key string) (string, error) {
	v, ok := c.Settings[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrSettingNotFound, key)
	}
	return v, nil
}

// BlueprintPrefix returns the mount prefix for a blueprint name, or the
// empty string when none is configured.
func (c *Config) BlueprintPrefix(name string) string {
	return c.BlueprintPrefixes[name]
}

// Clone returns a deep copy of the Config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	return &Config{
		Version:           c.Version,
		Logging:           c.Logging,
		Settings:          maps.Clone(c.Settings),
		BlueprintPrefixes: maps.Clone(c.BlueprintPrefixes),
	}
}
