package config

import "errors"

// Top-level error categories
var (
	ErrFailedToLoadConfig     = errors.New("failed to load config")
	ErrFailedToValidateConfig = errors.New("failed to validate config")
	ErrUnsupportedConfigVer   = errors.New("unsupported config version")
)

// Lookup errors
var (
	// ErrSettingNotFound is returned when a referenced setting key is absent.
	// There is no default substitution; callers treat this as fatal.
	ErrSettingNotFound = errors.New("setting not found")
)
