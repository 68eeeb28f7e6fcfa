package routing

import (
	"errors"
	"fmt"
)

// Table assembly errors
var (
	ErrInvalidPattern    = errors.New("invalid route pattern")
	ErrDuplicateEndpoint = errors.New("duplicate endpoint")
	ErrFrozenTable       = errors.New("table is frozen")
)

// Reverse-build errors, always carried inside a *BuildError
var (
	ErrEndpointNotFound = errors.New("endpoint not found")
	ErrMethodNotAllowed = errors.New("no rule for method")
	ErrMissingValue     = errors.New("missing value for parameter")
)

// BuildError reports a failed reverse build against a single table.
// A BuildError from the host table is the only error the two-phase
// resolver recovers from; anything else propagates immediately.
type BuildError struct {
	Endpoint string
	Method   string
	Err      error
}

func (e *BuildError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("cannot build URL for endpoint %q (method %s): %v", e.Endpoint, e.Method, e.Err)
	}
	return fmt.Sprintf("cannot build URL for endpoint %q: %v", e.Endpoint, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// IsBuildError reports whether err is (or wraps) a *BuildError.
func IsBuildError(err error) bool {
	var be *BuildError
	return errors.As(err, &be)
}
