package arena

import "errors"

var (
	// ErrFull indicates the slab has no room left for the requested slot.
	ErrFull = errors.New("arena: out of space")
	// ErrClosed indicates an allocation was attempted on a closed arena.
	ErrClosed = errors.New("arena: closed")
)
