// Package align holds the alignment arithmetic shared by the tagref core
// and the arena allocator. Every alignment in Go is a power of two, which
// keeps all of these single mask operations.
package align

import (
	"math/bits"
	"unsafe"
)

// Of returns the alignment in bytes of type T.
func Of[T any]() uintptr {
	var v T
	return unsafe.Alignof(v)
}

// Up returns n rounded up to the next multiple of a. a must be a power of
// two.
//
// Example:
//
//	Up(1, 8)  = 8
//	Up(8, 8)  = 8
//	Up(9, 8)  = 16
func Up(n, a uintptr) uintptr {
	return (n + a - 1) &^ (a - 1)
}

// IsAligned reports whether addr falls on a multiple of a. a must be a
// power of two.
func IsAligned(addr, a uintptr) bool {
	return addr&(a-1) == 0
}

// SpareBits returns the number of low address bits guaranteed zero for
// values aligned to a — the tag-bit budget that the alignment buys.
//
// Example:
//
//	SpareBits(4)    = 2
//	SpareBits(8)    = 3
//	SpareBits(4096) = 12
func SpareBits(a uintptr) int {
	return bits.TrailingZeros64(uint64(a))
}

// Taggable reports whether alignment a leaves at least two spare low bits,
// i.e. is a multiple of 4.
func Taggable(a uintptr) bool {
	return a%4 == 0
}
