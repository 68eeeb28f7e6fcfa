package blueprints

import "errors"

// Discovery failures surface during application assembly and are always
// fatal; they are never recovered at request time.
var (
	ErrUnknownGroup     = errors.New("unknown entry point group")
	ErrInvalidBlueprint = errors.New("invalid blueprint")
)
