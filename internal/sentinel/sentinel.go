// Package sentinel holds the storage-level errors every store returns.
// Services map them to typed domain failures at the boundary.
package sentinel

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrAlreadyUsed is a uniqueness violation: a token key, component or
	// token address that is already taken.
	ErrAlreadyUsed = errors.New("already used")
)
