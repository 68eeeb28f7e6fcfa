package app

import "errors"

var (
	// ErrNoURLBuilder is returned by URLFor when no builder was attached
	// during application assembly.
	ErrNoURLBuilder = errors.New("no URL builder attached")
)
