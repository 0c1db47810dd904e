package xdr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// ============================================================================
// Encoder - Go Values → Wire Format
// ============================================================================

// Encoder appends XDR encodings to an in-memory output buffer. It holds no
// state beyond the buffer and the arity counters of open sequence scopes, so
// encoding the same logical value always produces the same bytes.
//
// Scalar writes cannot fail (the buffer is bounded only by memory); the error
// returns exist so primitive and composite operations compose uniformly and
// so length overflow on opaque data is reported rather than truncated.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded output. The slice is valid until the next write
// or Reset.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Reset discards the output, retaining the underlying storage for reuse.
func (e *Encoder) Reset() {
	e.buf.Reset()
}

// ============================================================================
// Scalars
// ============================================================================

// EncodeUint32 appends a 32-bit unsigned integer in big-endian byte order
// (RFC 4506 Section 4.2).
func (e *Encoder) EncodeUint32(v uint32) error {
	var b [WidthInt]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
	return nil
}

// EncodeInt32 appends a 32-bit signed integer in big-endian two's complement
// (RFC 4506 Section 4.1).
func (e *Encoder) EncodeInt32(v int32) error {
	return e.EncodeUint32(uint32(v))
}

// EncodeUint64 appends a 64-bit unsigned hyper integer in big-endian byte
// order (RFC 4506 Section 4.5).
func (e *Encoder) EncodeUint64(v uint64) error {
	var b [WidthHyper]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
	return nil
}

// EncodeInt64 appends a 64-bit signed hyper integer (RFC 4506 Section 4.5).
func (e *Encoder) EncodeInt64(v int64) error {
	return e.EncodeUint64(uint64(v))
}

// EncodeBool appends a boolean as a 4-byte unsigned integer restricted to
// 0 and 1 (RFC 4506 Section 4.4).
func (e *Encoder) EncodeBool(v bool) error {
	var val uint32
	if v {
		val = 1
	}
	return e.EncodeUint32(val)
}

// EncodeFloat32 appends an IEEE-754 single-precision float in big-endian
// byte order (RFC 4506 Section 4.6).
func (e *Encoder) EncodeFloat32(v float32) error {
	return e.EncodeUint32(math.Float32bits(v))
}

// EncodeFloat64 appends an IEEE-754 double-precision float (RFC 4506
// Section 4.7).
func (e *Encoder) EncodeFloat64(v float64) error {
	return e.EncodeUint64(math.Float64bits(v))
}

// EncodeEnum appends an enum value as a 32-bit signed integer (RFC 4506
// Section 4.3). Membership in the enum's value set is the data-model's
// responsibility on the encode side; it is validated on decode.
func (e *Encoder) EncodeEnum(v int32) error {
	return e.EncodeInt32(v)
}

// EncodeVoid appends nothing (RFC 4506 Section 4.16). It exists so the
// data-model can express void union arms and empty results explicitly.
func (e *Encoder) EncodeVoid() error {
	return nil
}

// ============================================================================
// Opaque Data and Strings
// ============================================================================

// EncodeFixedOpaque appends a fixed-length byte sequence followed by zero
// padding to the next 4-byte boundary (RFC 4506 Section 4.9). The length is
// part of the static shape and is not written to the wire.
func (e *Encoder) EncodeFixedOpaque(data []byte) error {
	n, err := byteLen(data)
	if err != nil {
		return fmt.Errorf("encode fixed opaque: %w", err)
	}
	e.buf.Write(data)
	e.writePadding(n)
	return nil
}

// EncodeOpaque appends variable-length opaque data: a 4-byte length prefix,
// the bytes, and zero padding to the next 4-byte boundary (RFC 4506
// Section 4.10).
//
// Example:
//
//	[]byte{0x61, 0x62} → [00 00 00 02][61 62][00 00]
func (e *Encoder) EncodeOpaque(data []byte) error {
	n, err := byteLen(data)
	if err != nil {
		return fmt.Errorf("encode opaque: %w", err)
	}
	if err := e.EncodeUint32(n); err != nil {
		return err
	}
	e.buf.Write(data)
	e.writePadding(n)
	return nil
}

// EncodeString appends a string with the same layout as variable-length
// opaque data (RFC 4506 Section 4.11). The codec does not interpret the
// content; text validity is the caller's concern.
func (e *Encoder) EncodeString(s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return fmt.Errorf("encode string of %d bytes: %w", len(s), ErrIntegerOverflow)
	}
	n := uint32(len(s))
	if err := e.EncodeUint32(n); err != nil {
		return err
	}
	e.buf.WriteString(s)
	e.writePadding(n)
	return nil
}

// writePadding appends the 0-3 zero bytes that align a unit of logical
// length n to the next 4-byte boundary.
func (e *Encoder) writePadding(n uint32) {
	if pad := Padding(n); pad > 0 {
		e.buf.Write(zeroPad[:pad])
	}
}

func byteLen(data []byte) (uint32, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return 0, fmt.Errorf("%d bytes: %w", len(data), ErrIntegerOverflow)
	}
	return uint32(len(data)), nil
}

// ============================================================================
// Composites
// ============================================================================

// EncodeSequence begins a variable-length array scope (RFC 4506
// Section 4.13): it writes the 4-byte element count and returns a scope the
// data-model drives once per element. Close asserts the declared arity was
// honored; nothing is written at scope end because no end marker exists on
// the wire.
//
// Example:
//
//	[]uint32{1, 2} → [00 00 00 02][00 00 00 01][00 00 00 02]
func (e *Encoder) EncodeSequence(count uint32) (*SequenceEncoder, error) {
	if err := e.EncodeUint32(count); err != nil {
		return nil, err
	}
	return &SequenceEncoder{enc: e, expect: count}, nil
}

// EncodeFixedArray begins a fixed-length array scope (RFC 4506
// Section 4.12). The element count is part of the static shape, so no count
// prefix is written; the scope exists only to assert arity.
func (e *Encoder) EncodeFixedArray(count uint32) *SequenceEncoder {
	return &SequenceEncoder{enc: e, expect: count}
}

// EncodeUnion writes the 4-byte discriminant of a discriminated union
// (RFC 4506 Section 4.15). The data-model then encodes the selected arm's
// payload, which may be void.
func (e *Encoder) EncodeUnion(discriminant uint32) error {
	return e.EncodeUint32(discriminant)
}

// EncodeOptional encodes optional data as the bool-discriminated union of
// RFC 4506 Section 4.19: a 4-byte 0 or 1, followed by the inner value's
// encoding when present. The inner Marshaler is ignored when present is
// false, so it may be nil for absent values.
func (e *Encoder) EncodeOptional(present bool, inner Marshaler) error {
	if err := e.EncodeBool(present); err != nil {
		return err
	}
	if !present {
		return nil
	}
	return inner.EncodeXDR(e)
}

// EncodeStruct begins a structure scope. A struct is the concatenation of
// its fields' encodings in declared order with no metadata on the wire
// (RFC 4506 Section 4.14), so the scope writes nothing; it exists to mirror
// the decode side so data-model code reads the same in both directions.
func (e *Encoder) EncodeStruct() *StructEncoder {
	return &StructEncoder{enc: e}
}

// StructEncoder is the scope for one structure being encoded.
type StructEncoder struct {
	enc *Encoder
}

// Field encodes the next field of the structure.
func (s *StructEncoder) Field(m Marshaler) error {
	return m.EncodeXDR(s.enc)
}

// Close ends the scope.
func (s *StructEncoder) Close() error {
	return nil
}

// SequenceEncoder is the scope for one sequence or fixed array being
// encoded. The data-model calls Element once per element, in order, then
// Close.
type SequenceEncoder struct {
	enc    *Encoder
	expect uint32
	seen   uint32
}

// Element encodes the next element of the sequence.
func (s *SequenceEncoder) Element(m Marshaler) error {
	s.seen++
	return m.EncodeXDR(s.enc)
}

// Close ends the scope, failing with ErrArityMismatch if the data-model
// encoded a different number of elements than it declared.
func (s *SequenceEncoder) Close() error {
	if s.seen != s.expect {
		return fmt.Errorf("declared %d elements, encoded %d: %w",
			s.expect, s.seen, ErrArityMismatch)
	}
	return nil
}
