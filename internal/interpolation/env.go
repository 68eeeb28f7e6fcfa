// Package interpolation expands environment variable references inside
// configuration values, so external prefixes and other settings can vary per
// deployment without editing the config file.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// Matches ${VAR_NAME} and ${VAR_NAME:default}; the colon is captured so an
// empty default can be told apart from no default.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// ExpandEnvVars replaces ${VAR} and ${VAR:default} references in input with
// values from the environment. A reference without a default whose variable
// is unset is an error; all missing variables are reported together.
func ExpandEnvVars(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	var missing []error
	result := envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		varName := submatches[1]
		hasDefault := submatches[2] == ":"
		defaultValue := submatches[3]

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		if hasDefault {
			return defaultValue
		}

		missing = append(missing, fmt.Errorf("environment variable not defined: %s", varName))
		return match
	})

	return result, errors.Join(missing...)
}

// ExpandMap expands every value of the given map, returning a new map. Keys
// are never interpolated.
func ExpandMap(values map[string]string) (map[string]string, error) {
	if values == nil {
		return nil, nil
	}

	var errz []error
	expanded := make(map[string]string, len(values))
	for k, v := range values {
		ev, err := ExpandEnvVars(v)
		if err != nil {
			errz = append(errz, fmt.Errorf("value for %q: %w", k, err))
			continue
		}
		expanded[k] = ev
	}

	return expanded, errors.Join(errz...)
}
