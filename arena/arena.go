// Package arena provides fixed-capacity slabs of memory outside the Go
// heap, for values that will be referenced through packed words.
//
// A tagref.Ref stores its target's address as a uintptr, which the garbage
// collector does not trace. Targets allocated from an Arena sidestep that
// problem entirely: the slab is anonymous mapped memory the collector
// never touches, so packed addresses stay valid until Close. The slab base
// is page-aligned, which over-satisfies the 4-byte alignment the tag bits
// need for every slot carved out of it.
//
// Arenas are bump allocators: Alloc hands out slots in address order and
// nothing is freed individually. Close releases the whole slab at once,
// invalidating every pointer and Ref into it.
//
// An Arena is not safe for concurrent allocation; callers that share one
// across goroutines must serialize Alloc themselves.
package arena

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/tagbits/ptrkit/internal/align"
)

// Runtime debug flag for arena logging - controlled by TAGREF_LOG_ARENA env var.
var logArena = os.Getenv("TAGREF_LOG_ARENA") != ""

// Config controls the capacity of an Arena.
type Config struct {
	// Size is the requested capacity in bytes. It is rounded up to the
	// platform page size when the arena is created.
	Size int
}

// DefaultConfig is used when New is given a nil config.
var DefaultConfig = Config{
	Size: 64 * 1024,
}

// Arena is a fixed-capacity off-heap slab handing out bump-allocated
// slots.
type Arena struct {
	data   []byte       // the mapped slab
	off    uintptr      // next free byte offset within data
	unmap  func() error // releases the slab
	closed bool
}

// New maps a slab of cfg.Size bytes (rounded up to the page size) and
// returns an arena allocating from it. A nil cfg means DefaultConfig.
func New(cfg *Config) (*Arena, error) {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("arena: invalid size %d", cfg.Size)
	}

	size := int(align.Up(uintptr(cfg.Size), uintptr(os.Getpagesize())))
	data, unmap, err := mapSlab(size)
	if err != nil {
		return nil, fmt.Errorf("arena: map %d bytes: %w", size, err)
	}

	if logArena {
		fmt.Fprintf(os.Stderr, "[ARENA] mapped %d bytes at %p\n", size, &data[0])
	}

	return &Arena{
		data:  data,
		unmap: unmap,
	}, nil
}

// Alloc reserves a slot for one value of T and returns a pointer into the
// arena. The slot is aligned to T's natural alignment and zeroed.
//
// T must be pointer-free: the slab is invisible to the garbage collector,
// so Go pointers stored in it would not keep their referents alive.
func Alloc[T any](a *Arena) (*T, error) {
	if a == nil || a.closed {
		return nil, ErrClosed
	}

	var zero T
	size := unsafe.Sizeof(zero)
	off := align.Up(a.off, align.Of[T]())
	if off+size > uintptr(len(a.data)) {
		return nil, fmt.Errorf("arena: %w (need %d bytes, %d left)",
			ErrFull, size, uintptr(len(a.data))-a.off)
	}

	p := (*T)(unsafe.Add(unsafe.Pointer(&a.data[0]), off))
	a.off = off + size

	if logArena {
		fmt.Fprintf(os.Stderr, "[ARENA] alloc %d bytes at offset %d (align %d)\n",
			size, off, align.Of[T]())
	}

	return p, nil
}

// Remaining returns the number of unallocated bytes left in the slab,
// ignoring any padding a future Alloc may need.
func (a *Arena) Remaining() int {
	if a == nil || a.closed {
		return 0
	}
	return len(a.data) - int(a.off)
}

// Cap returns the total slab capacity in bytes.
func (a *Arena) Cap() int {
	if a == nil || a.closed {
		return 0
	}
	return len(a.data)
}

// Close releases the slab. Every pointer and Ref into the arena is invalid
// afterwards. Close is idempotent.
func (a *Arena) Close() error {
	if a == nil || a.closed {
		return nil
	}
	a.closed = true
	a.data = nil

	if logArena {
		fmt.Fprintf(os.Stderr, "[ARENA] closed (used %d bytes)\n", a.off)
	}

	return a.unmap()
}
