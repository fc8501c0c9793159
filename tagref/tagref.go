package tagref

import (
	"fmt"
	"unsafe"

	"github.com/tagbits/ptrkit/internal/align"
)

// Flag bit assignments within the packed word.
//
// Packed word layout (64-bit shown; 32-bit is identical in the low bits):
//
//	Bit     Contents
//	0       Flag A
//	1       Flag B
//	2..63   Target address bits 2..63 (bits 0..1 of the address are zero
//	        by the alignment precondition)
const (
	flagABit uintptr = 1 << 0
	flagBBit uintptr = 1 << 1
	tagMask          = flagABit | flagBBit
)

// MinAlign is the smallest target alignment that leaves room for both flag
// bits. New rejects any type aligned below it.
const MinAlign = 4

// Ref holds a borrowed *T and two boolean flags in a single machine word.
// It is immutable after construction and carries no storage beyond the
// word itself. The zero value decodes to a nil target; construct with New
// or MustNew.
//
// See the package documentation for the lifetime contract: the caller must
// keep the target alive for as long as the Ref is dereferenced.
type Ref[T any] struct {
	word uintptr
}

// New packs p and the two flags into a Ref.
//
// It fails with ErrMisaligned when T's alignment is not a multiple of 4
// (the flag bits would collide with real address bits) and with
// ErrNilTarget when p is nil. Both are type-selection or caller errors,
// not transient conditions; nothing retries them.
func New[T any](p *T, flagA, flagB bool) (Ref[T], error) {
	if p == nil {
		return Ref[T]{}, fmt.Errorf("tagref: new: %w", ErrNilTarget)
	}
	if a := align.Of[T](); !align.Taggable(a) {
		return Ref[T]{}, fmt.Errorf("tagref: new %T: %w (alignment %d, need a multiple of %d)",
			*p, ErrMisaligned, a, MinAlign)
	}

	// The address's two low bits are zero by alignment, so OR-ing the
	// flags in loses no address information.
	word := uintptr(unsafe.Pointer(p))
	if flagA {
		word |= flagABit
	}
	if flagB {
		word |= flagBBit
	}
	return Ref[T]{word: word}, nil
}

// MustNew is New for callers whose T is fixed at compile time: an
// unsuitable type is a programming error, so it panics instead of
// returning one.
func MustNew[T any](p *T, flagA, flagB bool) Ref[T] {
	r, err := New(p, flagA, flagB)
	if err != nil {
		panic(err)
	}
	return r
}

// Ref recovers the borrowed pointer by masking the flag bits out of the
// packed word. The result aliases the original target, not a copy of it.
//
// The conversion back from uintptr is only sound while the target is still
// live; see the package lifetime contract.
func (r Ref[T]) Ref() *T {
	return (*T)(unsafe.Pointer(r.word &^ tagMask))
}

// FlagA reports the first flag encoded at construction.
func (r Ref[T]) FlagA() bool {
	return r.word&flagABit != 0
}

// FlagB reports the second flag encoded at construction.
func (r Ref[T]) FlagB() bool {
	return r.word&flagBBit != 0
}

// Word returns the raw packed word, for inspection and diagnostics.
func (r Ref[T]) Word() uintptr {
	return r.word
}
