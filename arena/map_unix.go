//go:build linux || darwin

package arena

import "golang.org/x/sys/unix"

// mapSlab reserves size bytes of zeroed anonymous memory outside the Go
// heap. The returned cleanup unmaps it; calling it twice is a no-op.
func mapSlab(size int) ([]byte, func() error, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		data = nil
		return err
	}
	return data, cleanup, nil
}
