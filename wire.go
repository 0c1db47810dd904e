package xdr

import (
	"fmt"
	"math"
)

// ============================================================================
// Wire Primitives - Alignment and Width Rules
// ============================================================================

// Alignment is the XDR unit size. Every encoded item occupies a multiple of
// this many bytes (RFC 4506 Section 3); variable-length data is padded with
// zero bytes to reach it.
const Alignment = 4

// Scalar widths in bytes. Both widths are already multiples of Alignment, so
// scalars never carry padding; only opaque and string data do.
const (
	// WidthInt is the width of int, unsigned int, bool, enum, float, and
	// union discriminants (RFC 4506 Sections 4.1-4.4, 4.6, 4.15).
	WidthInt = 4

	// WidthHyper is the width of hyper, unsigned hyper, and double
	// (RFC 4506 Sections 4.5, 4.7).
	WidthHyper = 8
)

// Padding returns the number of zero bytes (0-3) required after a unit of
// logical length n to reach the next Alignment boundary.
//
// Example:
//
//	Padding(2) = 2, Padding(4) = 0, Padding(5) = 3
func Padding(n uint32) int {
	return int((Alignment - n%Alignment) % Alignment)
}

// PaddedLen returns the total encoded length of a unit of logical length n,
// including its padding. The computation widens to 64 bits; a length whose
// padded size would not fit the 32-bit length space fails with
// ErrIntegerOverflow.
func PaddedLen(n uint32) (uint32, error) {
	padded := uint64(n) + uint64(Padding(n))
	if padded > math.MaxUint32 {
		return 0, fmt.Errorf("padded length of %d: %w", n, ErrIntegerOverflow)
	}
	return uint32(padded), nil
}

// zeroPad is the shared source of padding bytes for the encoder. XDR padding
// is at most Alignment-1 bytes.
var zeroPad [Alignment - 1]byte
