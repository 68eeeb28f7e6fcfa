package urls

import "errors"

var (
	// ErrNotSetup is returned by Build when Setup has not completed.
	ErrNotSetup = errors.New("url builder has not been set up")
)
