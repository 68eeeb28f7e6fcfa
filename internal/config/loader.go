package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atlanticdynamic/urlbridge/internal/interpolation"
	"github.com/pelletier/go-toml/v2"
)

// tomlConfig is the raw TOML shape before interpolation and conversion to
// the domain model.
type tomlConfig struct {
	Version string `toml:"version"`
	Logging struct {
		Format string `toml:"format"`
		Level  string `toml:"level"`
	} `toml:"logging"`
	Settings          map[string]string `toml:"settings"`
	BlueprintPrefixes map[string]string `toml:"blueprint_prefixes"`
}

// NewConfig loads configuration from a TOML file
func NewConfig(filePath string) (*Config, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: config file does not exist: %s", ErrFailedToLoadConfig, filePath)
	}

	ext := filepath.Ext(filePath)
	if ext != ".toml" {
		return nil, fmt.Errorf("%w: unsupported config format: %s, only .toml is supported", ErrFailedToLoadConfig, ext)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	return NewConfigFromBytes(data)
}

// NewConfigFromReader loads configuration from an io.Reader providing TOML data
func NewConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return NewConfigFromBytes(data)
}

// NewConfigFromBytes loads configuration from TOML bytes, interpolates
// environment variables in setting values, and validates the result.
func NewConfigFromBytes(data []byte) (*Config, error) {
	var raw tomlConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	if raw.Version == "" {
		raw.Version = VersionLatest
	}

	format, err := LogFormatFromString(raw.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	level, err := LogLevelFromString(raw.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	settings, err := interpolation.ExpandMap(raw.Settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	prefixes, err := interpolation.ExpandMap(raw.BlueprintPrefixes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	cfg := &Config{
		Version: raw.Version,
		Logging: LoggingConfig{
			Format: format,
			Level:  level,
		},
		Settings:          settings,
		BlueprintPrefixes: prefixes,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToValidateConfig, err)
	}

	return cfg, nil
}
