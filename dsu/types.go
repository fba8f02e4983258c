// Package dsu defines the sentinel errors shared by all DSU operations.
package dsu

import "errors"

// Sentinel errors for DSU operations.
var (
	// ErrUninitialized indicates an operation on a zero-value or torn-down DSU.
	ErrUninitialized = errors.New("dsu: structure is uninitialized")

	// ErrIndexOutOfRange indicates an element index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("dsu: element index out of range")

	// ErrNegativeSize indicates New or Reset was called with a negative size.
	ErrNegativeSize = errors.New("dsu: size must be non-negative")
)
