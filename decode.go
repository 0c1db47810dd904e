package xdr

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ============================================================================
// Decoder - Wire Format → Go Values
// ============================================================================

// Decoder consumes XDR encodings from an in-memory input, validating every
// format-level constraint as it goes. Composite decoding is pull-based: the
// data-model opens a scope, asks the Decoder for scalars and nested scopes in
// the order the target shape requires, and closes it.
//
// The input is treated as untrusted. Length and count prefixes are checked
// against the configured maximum and against the remaining input before any
// allocation, and nesting depth is bounded by an explicit counter so
// adversarial input cannot exhaust the stack.
//
// After any error the Decoder's position is meaningless and no usable
// partial value exists; callers must discard it.
type Decoder struct {
	cur   *cursor
	lim   limits
	depth uint32
}

// NewDecoder returns a Decoder over data with the given options applied on
// top of the defaults (strict padding, DefaultMaxCollectionLen,
// DefaultMaxDepth).
func NewDecoder(data []byte, opts ...Option) *Decoder {
	lim := defaultLimits()
	for _, opt := range opts {
		opt(&lim)
	}
	return &Decoder{cur: newCursor(data), lim: lim}
}

// Consumed reports how many input bytes have been decoded so far.
func (d *Decoder) Consumed() int {
	return d.cur.consumed()
}

// Remaining reports how many input bytes are left.
func (d *Decoder) Remaining() int {
	return d.cur.remaining()
}

// enter increments the composite nesting depth, failing once the configured
// limit is reached. Every composite scope calls it on entry and leave on
// close, bounding stack usage on deeply nested or malicious input.
func (d *Decoder) enter() error {
	if d.depth >= d.lim.maxDepth {
		return fmt.Errorf("nesting depth %d: %w", d.lim.maxDepth, ErrRecursionLimit)
	}
	d.depth++
	return nil
}

func (d *Decoder) leave() {
	d.depth--
}

// ============================================================================
// Scalars
// ============================================================================

// DecodeUint32 reads a 32-bit unsigned integer in big-endian byte order
// (RFC 4506 Section 4.2). Scalar widths are already 4-byte aligned, so no
// padding step follows.
func (d *Decoder) DecodeUint32() (uint32, error) {
	b, err := d.cur.take(WidthInt)
	if err != nil {
		return 0, fmt.Errorf("read uint32: %w", err)
	}
	return binary.BigEndian.Uint32(b), nil
}

// DecodeInt32 reads a 32-bit signed integer in big-endian two's complement
// (RFC 4506 Section 4.1).
func (d *Decoder) DecodeInt32() (int32, error) {
	b, err := d.cur.take(WidthInt)
	if err != nil {
		return 0, fmt.Errorf("read int32: %w", err)
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// DecodeUint64 reads a 64-bit unsigned hyper integer (RFC 4506 Section 4.5).
func (d *Decoder) DecodeUint64() (uint64, error) {
	b, err := d.cur.take(WidthHyper)
	if err != nil {
		return 0, fmt.Errorf("read uint64: %w", err)
	}
	return binary.BigEndian.Uint64(b), nil
}

// DecodeInt64 reads a 64-bit signed hyper integer (RFC 4506 Section 4.5).
func (d *Decoder) DecodeInt64() (int64, error) {
	v, err := d.DecodeUint64()
	if err != nil {
		return 0, fmt.Errorf("read int64: %w", err)
	}
	return int64(v), nil
}

// DecodeBool reads a boolean (RFC 4506 Section 4.4). Any value other than
// 0 or 1 fails with ErrInvalidBool.
func (d *Decoder) DecodeBool() (bool, error) {
	v, err := d.DecodeUint32()
	if err != nil {
		return false, fmt.Errorf("read bool: %w", err)
	}
	if v > 1 {
		return false, fmt.Errorf("boolean value %d: %w", v, ErrInvalidBool)
	}
	return v == 1, nil
}

// DecodeFloat32 reads an IEEE-754 single-precision float (RFC 4506
// Section 4.6).
func (d *Decoder) DecodeFloat32() (float32, error) {
	v, err := d.DecodeUint32()
	if err != nil {
		return 0, fmt.Errorf("read float32: %w", err)
	}
	return math.Float32frombits(v), nil
}

// DecodeFloat64 reads an IEEE-754 double-precision float (RFC 4506
// Section 4.7).
func (d *Decoder) DecodeFloat64() (float64, error) {
	v, err := d.DecodeUint64()
	if err != nil {
		return 0, fmt.Errorf("read float64: %w", err)
	}
	return math.Float64frombits(v), nil
}

// DecodeEnum reads a 32-bit signed enum value (RFC 4506 Section 4.3) and
// validates it against the enum's known value set, failing with
// ErrUnknownDiscriminant for values outside it.
func (d *Decoder) DecodeEnum(known VariantSet) (int32, error) {
	v, err := d.DecodeInt32()
	if err != nil {
		return 0, fmt.Errorf("read enum: %w", err)
	}
	if !known.Contains(uint32(v)) {
		return 0, fmt.Errorf("enum value %d: %w", v, ErrUnknownDiscriminant)
	}
	return v, nil
}

// DecodeVoid reads nothing (RFC 4506 Section 4.16).
func (d *Decoder) DecodeVoid() error {
	return nil
}

// ============================================================================
// Opaque Data and Strings
// ============================================================================

// DecodeFixedOpaque reads a fixed-length byte sequence of statically known
// length n and skips its padding (RFC 4506 Section 4.9). The returned slice
// is a copy and does not alias the input.
func (d *Decoder) DecodeFixedOpaque(n uint32) ([]byte, error) {
	b, err := d.cur.take(int(n))
	if err != nil {
		return nil, fmt.Errorf("read fixed opaque: %w", err)
	}
	data := make([]byte, n)
	copy(data, b)
	if err := d.cur.skipPadding(n, d.lim.strictPadding); err != nil {
		return nil, fmt.Errorf("fixed opaque: %w", err)
	}
	return data, nil
}

// DecodeOpaque reads variable-length opaque data (RFC 4506 Section 4.10):
// a 4-byte length, the bytes, and the padding to the next 4-byte boundary.
//
// The declared length is validated against the configured maximum and
// against the remaining input before any allocation, so a hostile prefix
// cannot drive memory use.
func (d *Decoder) DecodeOpaque() ([]byte, error) {
	n, err := d.DecodeUint32()
	if err != nil {
		return nil, fmt.Errorf("read opaque length: %w", err)
	}
	if n > d.lim.maxCollectionLen {
		return nil, fmt.Errorf("opaque length %d exceeds maximum %d: %w",
			n, d.lim.maxCollectionLen, ErrCollectionTooLarge)
	}
	if uint64(n) > uint64(d.cur.remaining()) {
		return nil, fmt.Errorf("opaque length %d with %d bytes remaining: %w",
			n, d.cur.remaining(), ErrUnexpectedEOF)
	}
	return d.DecodeFixedOpaque(n)
}

// DecodeString reads a string (RFC 4506 Section 4.11). The bytes are not
// validated as text; content interpretation is the caller's concern.
func (d *Decoder) DecodeString() (string, error) {
	b, err := d.DecodeOpaque()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ============================================================================
// Composites
// ============================================================================

// DecodeStruct begins a structure scope. A struct carries no metadata on the
// wire (RFC 4506 Section 4.14); the scope exists to bound nesting depth and
// to give the data-model an ordered field cursor.
func (d *Decoder) DecodeStruct() (*StructDecoder, error) {
	if err := d.enter(); err != nil {
		return nil, fmt.Errorf("decode struct: %w", err)
	}
	return &StructDecoder{dec: d}, nil
}

// DecodeSequence begins a variable-length array scope (RFC 4506
// Section 4.13): it reads the 4-byte element count, validates it against the
// configured maximum, and returns a scope the data-model drives once per
// element.
func (d *Decoder) DecodeSequence() (*SequenceDecoder, error) {
	if err := d.enter(); err != nil {
		return nil, fmt.Errorf("decode sequence: %w", err)
	}
	count, err := d.DecodeUint32()
	if err != nil {
		d.leave()
		return nil, fmt.Errorf("read element count: %w", err)
	}
	if count > d.lim.maxCollectionLen {
		d.leave()
		return nil, fmt.Errorf("element count %d exceeds maximum %d: %w",
			count, d.lim.maxCollectionLen, ErrCollectionTooLarge)
	}
	return &SequenceDecoder{dec: d, count: count, left: count}, nil
}

// DecodeFixedArray begins a fixed-length array scope of statically known
// element count (RFC 4506 Section 4.12). No count is read from the wire.
func (d *Decoder) DecodeFixedArray(count uint32) (*SequenceDecoder, error) {
	if err := d.enter(); err != nil {
		return nil, fmt.Errorf("decode fixed array: %w", err)
	}
	return &SequenceDecoder{dec: d, count: count, left: count}, nil
}

// DecodeUnion begins a discriminated union scope (RFC 4506 Section 4.15):
// it reads the 4-byte discriminant and validates it against the target
// shape's variant set. A discriminant outside the set fails with
// ErrUnknownDiscriminant without consuming further bytes. The data-model
// inspects Discriminant to select the arm, decodes its payload through Arm
// (or directly, for void arms), and closes the scope.
func (d *Decoder) DecodeUnion(variants VariantSet) (*UnionDecoder, error) {
	if err := d.enter(); err != nil {
		return nil, fmt.Errorf("decode union: %w", err)
	}
	disc, err := d.DecodeUint32()
	if err != nil {
		d.leave()
		return nil, fmt.Errorf("read discriminant: %w", err)
	}
	if !variants.Contains(disc) {
		d.leave()
		return nil, fmt.Errorf("discriminant %d not in variant set %v: %w",
			disc, variants, ErrUnknownDiscriminant)
	}
	return &UnionDecoder{dec: d, disc: disc}, nil
}

// DecodeOptional reads optional data as the bool-discriminated union of
// RFC 4506 Section 4.19. When the value is present, inner decodes it; when
// absent, inner is not called and may be nil. A discriminant other than 0 or
// 1 fails with ErrUnknownDiscriminant.
func (d *Decoder) DecodeOptional(inner Unmarshaler) (bool, error) {
	u, err := d.DecodeUnion(optionalVariants)
	if err != nil {
		return false, fmt.Errorf("decode optional: %w", err)
	}
	present := u.Discriminant() == 1
	if present {
		if err := u.Arm(inner); err != nil {
			return false, err
		}
	}
	return present, u.Close()
}

// StructDecoder is the scope for one structure being decoded. The
// data-model calls Field once per field in declared order, then Close.
type StructDecoder struct {
	dec *Decoder
}

// Field decodes the next field of the structure.
func (s *StructDecoder) Field(u Unmarshaler) error {
	return u.DecodeXDR(s.dec)
}

// Close ends the scope.
func (s *StructDecoder) Close() error {
	s.dec.leave()
	return nil
}

// SequenceDecoder is the scope for one sequence or fixed array being
// decoded.
type SequenceDecoder struct {
	dec   *Decoder
	count uint32
	left  uint32
}

// Len returns the element count: the decoded prefix for sequences, the
// declared count for fixed arrays.
func (s *SequenceDecoder) Len() uint32 {
	return s.count
}

// More reports whether elements remain to be decoded.
func (s *SequenceDecoder) More() bool {
	return s.left > 0
}

// Element decodes the next element. Driving more elements than Len is a
// data-model contract violation and fails with ErrArityMismatch.
func (s *SequenceDecoder) Element(u Unmarshaler) error {
	if s.left == 0 {
		return fmt.Errorf("element %d of %d: %w", s.count+1, s.count, ErrArityMismatch)
	}
	s.left--
	return u.DecodeXDR(s.dec)
}

// Close ends the scope, failing with ErrArityMismatch if the data-model
// decoded fewer elements than the sequence declared.
func (s *SequenceDecoder) Close() error {
	s.dec.leave()
	if s.left != 0 {
		return fmt.Errorf("decoded %d of %d elements: %w",
			s.count-s.left, s.count, ErrArityMismatch)
	}
	return nil
}

// UnionDecoder is the scope for one discriminated union being decoded.
type UnionDecoder struct {
	dec  *Decoder
	disc uint32
}

// Discriminant returns the validated discriminant selecting the active arm.
func (u *UnionDecoder) Discriminant() uint32 {
	return u.disc
}

// Arm decodes the selected arm's payload. Void arms skip Arm and call Close
// directly.
func (u *UnionDecoder) Arm(um Unmarshaler) error {
	return um.DecodeXDR(u.dec)
}

// Close ends the scope.
func (u *UnionDecoder) Close() error {
	u.dec.leave()
	return nil
}
