package tagref

import "errors"

var (
	// ErrMisaligned indicates the target type's alignment is not a multiple
	// of 4, so its addresses have no spare low bits for the flags.
	ErrMisaligned = errors.New("tagref: alignment not a multiple of 4")
	// ErrNilTarget indicates construction over a nil pointer. A nil target
	// would pack to a word equal to the bare flags and decode to an invalid
	// pointer.
	ErrNilTarget = errors.New("tagref: nil target")
)
