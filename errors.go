package xdr

import "errors"

// ============================================================================
// Error Taxonomy
// ============================================================================
//
// Every decode failure wraps exactly one of the sentinel errors below, so
// callers can classify failures with errors.Is while the wrapped message
// carries offsets, sizes, and discriminant values for diagnostics. The engine
// never retries and never produces a partial value: after any error the
// Encoder or Decoder position is meaningless and the instance must be
// discarded.

var (
	// ErrUnexpectedEOF indicates a read requested more bytes than remain in
	// the input. This is the ordinary "malformed or truncated input" failure.
	ErrUnexpectedEOF = errors.New("xdr: unexpected end of input")

	// ErrInvalidPadding indicates a non-zero padding byte was encountered
	// while strict padding validation is enabled (the default).
	ErrInvalidPadding = errors.New("xdr: non-zero padding byte")

	// ErrUnknownDiscriminant indicates a union discriminant that is not in
	// the target shape's known variant set. No bytes beyond the discriminant
	// are consumed.
	ErrUnknownDiscriminant = errors.New("xdr: unknown union discriminant")

	// ErrInvalidBool indicates a boolean decoded to a value other than 0 or 1.
	ErrInvalidBool = errors.New("xdr: invalid boolean value")

	// ErrCollectionTooLarge indicates a declared length or element count
	// exceeds the configured maximum. The check happens before any
	// allocation proportional to the declared value.
	ErrCollectionTooLarge = errors.New("xdr: declared length exceeds maximum")

	// ErrRecursionLimit indicates nested composite decoding exceeded the
	// configured depth limit.
	ErrRecursionLimit = errors.New("xdr: recursion depth limit exceeded")

	// ErrArityMismatch indicates the data-model declared one element count
	// for a sequence or array scope but drove a different number of element
	// operations. This is a programming-contract violation in the data-model
	// layer, not a wire error.
	ErrArityMismatch = errors.New("xdr: sequence arity mismatch")

	// ErrIntegerOverflow indicates padded-length arithmetic would overflow
	// the 32-bit length space.
	ErrIntegerOverflow = errors.New("xdr: padded length overflows uint32")
)
