package align

import "testing"

func TestUp(t *testing.T) {
	cases := []struct {
		n, a, want uintptr
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{1, 4096, 4096},
		{4096, 4096, 4096},
		{4097, 4096, 8192},
	}
	for _, c := range cases {
		if got := Up(c.n, c.a); got != c.want {
			t.Errorf("Up(%d, %d) = %d, want %d", c.n, c.a, got, c.want)
		}
	}
}

func TestIsAligned(t *testing.T) {
	if !IsAligned(0, 4) {
		t.Errorf("IsAligned(0, 4) = false")
	}
	if !IsAligned(64, 4) {
		t.Errorf("IsAligned(64, 4) = false")
	}
	if IsAligned(6, 4) {
		t.Errorf("IsAligned(6, 4) = true")
	}
}

func TestSpareBits(t *testing.T) {
	cases := []struct {
		a    uintptr
		want int
	}{
		{1, 0},
		{2, 1},
		{4, 2},
		{8, 3},
		{4096, 12},
	}
	for _, c := range cases {
		if got := SpareBits(c.a); got != c.want {
			t.Errorf("SpareBits(%d) = %d, want %d", c.a, got, c.want)
		}
	}
}

func TestTaggable(t *testing.T) {
	for _, a := range []uintptr{4, 8, 16, 4096} {
		if !Taggable(a) {
			t.Errorf("Taggable(%d) = false", a)
		}
	}
	for _, a := range []uintptr{1, 2} {
		if Taggable(a) {
			t.Errorf("Taggable(%d) = true", a)
		}
	}
}

func TestOf(t *testing.T) {
	if got := Of[int32](); got != 4 {
		t.Errorf("Of[int32]() = %d, want 4", got)
	}
	if got := Of[byte](); got != 1 {
		t.Errorf("Of[byte]() = %d, want 1", got)
	}
	if got := Of[int64](); got%4 != 0 {
		t.Errorf("Of[int64]() = %d, want a multiple of 4", got)
	}
}
