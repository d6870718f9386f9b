package records

import "errors"

var (
	// ErrInvalidRecord indicates a source supplied a malformed record.
	ErrInvalidRecord = errors.New("invalid record")
)
