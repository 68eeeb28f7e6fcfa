package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs comprehensive validation of the configuration
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = VersionUnknown
	}

	switch c.Version {
	case VersionLatest:
		// Supported version
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedConfigVer, c.Version)
	}

	errz := []error{}

	if !c.Logging.Format.IsValid() {
		errz = append(errz, fmt.Errorf("invalid log format: %s", c.Logging.Format))
	}
	if !c.Logging.Level.IsValid() {
		errz = append(errz, fmt.Errorf("invalid log level: %s", c.Logging.Level))
	}

	for key := range c.Settings {
		if key == "" {
			errz = append(errz, errors.New("settings table has an empty key"))
		}
	}

	for name, prefix := range c.BlueprintPrefixes {
		if name == "" {
			errz = append(errz, errors.New("blueprint prefix entry has an empty blueprint name"))
			continue
		}
		if prefix == "" {
			continue // no prefix is the same as mounting at the root
		}
		if !strings.HasPrefix(prefix, "/") {
			errz = append(errz, fmt.Errorf("blueprint '%s' prefix must begin with '/': %s", name, prefix))
		}
		if strings.HasSuffix(prefix, "/") {
			errz = append(errz, fmt.Errorf("blueprint '%s' prefix must not end with '/': %s", name, prefix))
		}
	}

	return errors.Join(errz...)
}
