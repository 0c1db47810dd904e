package xdr

// ============================================================================
// Decode Limits and Strictness
// ============================================================================

// Default limits applied by NewDecoder and Unmarshal when no Option overrides
// them. They are generous enough for legitimate RPC payloads but finite, so
// a hostile length prefix cannot drive allocation or stack growth.
const (
	// DefaultMaxCollectionLen caps any single length or count prefix.
	// Matches the opaque-field bound used for NFS-style payloads.
	DefaultMaxCollectionLen = 1 << 20 // 1 MiB

	// DefaultMaxDepth caps nested composite decoding.
	DefaultMaxDepth = 64
)

// limits holds the only externally tunable decode behaviors. All other wire
// rules are fixed by RFC 4506.
type limits struct {
	strictPadding    bool
	maxCollectionLen uint32
	maxDepth         uint32
}

func defaultLimits() limits {
	return limits{
		strictPadding:    true,
		maxCollectionLen: DefaultMaxCollectionLen,
		maxDepth:         DefaultMaxDepth,
	}
}

// Option configures a Decoder.
type Option func(*limits)

// WithMaxCollectionLen caps the value any single length or count prefix may
// declare. Lengths above the cap fail with ErrCollectionTooLarge before any
// allocation.
func WithMaxCollectionLen(n uint32) Option {
	return func(l *limits) { l.maxCollectionLen = n }
}

// WithMaxDepth caps nested composite decoding. Depths beyond the cap fail
// with ErrRecursionLimit.
func WithMaxDepth(n uint32) Option {
	return func(l *limits) { l.maxDepth = n }
}

// WithLenientPadding accepts non-zero padding bytes instead of failing with
// ErrInvalidPadding. The default is strict, per canonical RFC 4506 encoding,
// but real-world peers vary in compliance.
func WithLenientPadding() Option {
	return func(l *limits) { l.strictPadding = false }
}
