package xdr

import (
	"errors"
	"math"
	"testing"
)

func TestPadding(t *testing.T) {
	cases := []struct {
		n    uint32
		want int
	}{
		{0, 0},
		{1, 3},
		{2, 2},
		{3, 1},
		{4, 0},
		{5, 3},
		{8, 0},
		{math.MaxUint32, 1},
	}
	for _, c := range cases {
		if got := Padding(c.n); got != c.want {
			t.Errorf("Padding(%d): got %d, want %d", c.n, got, c.want)
		}
	}
}

func TestPaddedLen(t *testing.T) {
	cases := []struct {
		n    uint32
		want uint32
	}{
		{0, 0},
		{1, 4},
		{2, 4},
		{4, 4},
		{5, 8},
		{math.MaxUint32 - 3, math.MaxUint32 - 3}, // 0xFFFFFFFC, already aligned
	}
	for _, c := range cases {
		got, err := PaddedLen(c.n)
		if err != nil {
			t.Fatalf("PaddedLen(%d): %v", c.n, err)
		}
		if got != c.want {
			t.Errorf("PaddedLen(%d): got %d, want %d", c.n, got, c.want)
		}
	}
}

func TestPaddedLenOverflow(t *testing.T) {
	// Any length whose padded size crosses 2^32 must be rejected, not
	// wrapped.
	for _, n := range []uint32{math.MaxUint32, math.MaxUint32 - 1, math.MaxUint32 - 2} {
		if _, err := PaddedLen(n); !errors.Is(err, ErrIntegerOverflow) {
			t.Errorf("PaddedLen(%d): got %v, want ErrIntegerOverflow", n, err)
		}
	}
}
