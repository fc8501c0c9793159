// Package tagref packs a borrowed reference and two boolean flags into the
// storage footprint of a single pointer.
//
// # Overview
//
// An address that is aligned to a 4-byte boundary always has its two
// low-order bits set to zero. Ref exploits those spare bits to carry two
// booleans alongside the address, so that {*T, flag A, flag B} occupies
// exactly one machine word. This is the classic tagged-pointer technique
// used by garbage collectors and language runtimes to keep per-reference
// metadata free of charge.
//
// # Key Types
//
//   - Ref: the packed word. Constructed once, immutable afterwards.
//
// Construction validates the precondition that makes the packing sound:
// the target type's alignment must be a multiple of 4 (invariantly true
// for int32, int64, float64, slices, maps, pointers, and any struct
// containing one of those; NOT true for byte, int16, or structs made only
// of them). A violating type is rejected before any word is packed, since
// OR-ing flags into a misaligned address would silently corrupt it.
//
// # Encoding
//
// The packed word is the bitwise OR of the target address, flag A in bit 0
// and flag B in bit 1:
//
//	word = addr | a | b<<1      // addr's two low bits are zero by alignment
//	addr = word &^ 3            // decoding masks the tag bits back out
//
// Decoding is total and lossless: the masked word is bit-for-bit the
// address that was encoded, and each flag bit reads back independently.
//
// # Lifetime Contract
//
// A Ref borrows its target; it never owns it and a packed uintptr does not
// keep the target reachable. The caller must guarantee the target outlives
// the Ref by one of two disciplines:
//
//   - keep a live reference to the target for the Ref's lifetime
//     (runtime.KeepAlive at the last use is enough), or
//   - allocate the target from memory with an explicit lifetime that the
//     collector does not manage, such as the arena package in this module.
//
// Dereferencing a Ref whose target has been freed or collected is
// undefined behavior, exactly as with any non-owning reference.
//
// # Thread Safety
//
// A Ref is an immutable value; any number of goroutines may call its
// accessors concurrently. The target itself is shared, not owned, so
// mutating it while readers hold Refs is the caller's problem to
// coordinate, the same as with a plain pointer.
//
// # Related Packages
//
//   - github.com/tagbits/ptrkit/arena: explicit-lifetime, off-heap target
//     storage that satisfies the lifetime contract by construction
package tagref
