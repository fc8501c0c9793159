//go:build !linux && !darwin

package arena

import (
	"os"
	"unsafe"

	"github.com/tagbits/ptrkit/internal/align"
)

// mapSlab falls back to a page-aligned heap buffer on platforms without
// anonymous mmap. The slab is then ordinary collector-managed memory; it
// stays live while the arena holds it, but Refs into it must not outlive
// the arena, same contract as the mapped case.
func mapSlab(size int) ([]byte, func() error, error) {
	page := uintptr(os.Getpagesize())
	raw := make([]byte, uintptr(size)+page)
	base := uintptr(unsafe.Pointer(&raw[0]))
	shift := align.Up(base, page) - base
	data := raw[shift : shift+uintptr(size) : shift+uintptr(size)]
	return data, func() error { return nil }, nil
}
