package domain

import "errors"

// Error taxonomy. All failures are local to the offending call: no partial
// mutation of a session happens when one of these is returned.
var (
	ErrNotFound      = errors.New("session not found")
	ErrInvalidState  = errors.New("invalid session state")
	ErrValidation    = errors.New("validation failed")
	ErrConfiguration = errors.New("configuration error")
)
