package regroup

import "errors"

// Sentinel errors returned by the library.
var (
	// ErrInvalidConfig is returned when a configuration violates a
	// validation rule. It is the only error kind produced by the core:
	// generation and statistics are total functions over a validated
	// configuration and cannot fail.
	ErrInvalidConfig = errors.New("invalid configuration")
)
