package arena_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/tagbits/ptrkit/arena"
)

func TestNewDefaultConfig(t *testing.T) {
	a, err := arena.New(nil)
	require.NoError(t, err)
	defer a.Close()

	require.GreaterOrEqual(t, a.Cap(), arena.DefaultConfig.Size)
	require.Equal(t, a.Cap(), a.Remaining())
}

func TestNewRoundsToPageSize(t *testing.T) {
	a, err := arena.New(&arena.Config{Size: 1})
	require.NoError(t, err)
	defer a.Close()

	// A one-byte request still maps at least a whole page.
	require.GreaterOrEqual(t, a.Cap(), 4096)
}

func TestNewRejectsBadSize(t *testing.T) {
	_, err := arena.New(&arena.Config{Size: 0})
	require.Error(t, err)

	_, err = arena.New(&arena.Config{Size: -1})
	require.Error(t, err)
}

func TestAllocAlignment(t *testing.T) {
	a, err := arena.New(nil)
	require.NoError(t, err)
	defer a.Close()

	// Force odd bump offsets with byte slots, then check wider slots still
	// land on their natural alignment.
	_, err = arena.Alloc[byte](a)
	require.NoError(t, err)

	p32, err := arena.Alloc[int32](a)
	require.NoError(t, err)
	require.Zero(t, uintptr(unsafe.Pointer(p32))%unsafe.Alignof(int32(0)))

	_, err = arena.Alloc[byte](a)
	require.NoError(t, err)

	p64, err := arena.Alloc[int64](a)
	require.NoError(t, err)
	require.Zero(t, uintptr(unsafe.Pointer(p64))%unsafe.Alignof(int64(0)))
}

func TestAllocReadWrite(t *testing.T) {
	a, err := arena.New(nil)
	require.NoError(t, err)
	defer a.Close()

	type point struct {
		X, Y int32
	}
	p, err := arena.Alloc[point](a)
	require.NoError(t, err)

	// Slots come back zeroed.
	require.Equal(t, point{}, *p)

	p.X, p.Y = 3, 4
	require.Equal(t, point{X: 3, Y: 4}, *p)
}

func TestAllocExhaustion(t *testing.T) {
	a, err := arena.New(&arena.Config{Size: 4096})
	require.NoError(t, err)
	defer a.Close()

	type block [1024]byte
	for i := 0; i < a.Cap()/1024; i++ {
		_, allocErr := arena.Alloc[block](a)
		require.NoError(t, allocErr)
	}
	require.Zero(t, a.Remaining())

	_, err = arena.Alloc[block](a)
	require.ErrorIs(t, err, arena.ErrFull)
}

func TestCloseInvalidatesArena(t *testing.T) {
	a, err := arena.New(nil)
	require.NoError(t, err)

	_, err = arena.Alloc[int64](a)
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.Zero(t, a.Remaining())
	require.Zero(t, a.Cap())

	_, err = arena.Alloc[int64](a)
	require.ErrorIs(t, err, arena.ErrClosed)

	// Idempotent.
	require.NoError(t, a.Close())
}
