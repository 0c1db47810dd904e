package xdr

// ============================================================================
// Data-Model Boundary
// ============================================================================
//
// The engine is agnostic to concrete value shapes. The data-model layer (a
// generated codec, a reflection shim, or hand-written per-type methods) maps
// each composite type to an ordered sequence of primitive and scoped
// composite operations against an Encoder or Decoder. These interfaces carry
// no wire bytes themselves; they are the structural contract between the two
// layers.

// Marshaler is implemented by types that can encode themselves to XDR.
type Marshaler interface {
	EncodeXDR(*Encoder) error
}

// Unmarshaler is implemented by types that can decode themselves from XDR.
type Unmarshaler interface {
	DecodeXDR(*Decoder) error
}

// MarshalerFunc adapts a function to the Marshaler interface, so sequence
// elements and union arms can be encoded inline without a named type.
type MarshalerFunc func(*Encoder) error

// EncodeXDR calls f.
func (f MarshalerFunc) EncodeXDR(e *Encoder) error { return f(e) }

// UnmarshalerFunc adapts a function to the Unmarshaler interface.
type UnmarshalerFunc func(*Decoder) error

// DecodeXDR calls f.
func (f UnmarshalerFunc) DecodeXDR(d *Decoder) error { return f(d) }

// VariantSet is the shape descriptor for a discriminated union: the set of
// discriminant values the target type knows. The Decoder rejects any wire
// discriminant outside the set with ErrUnknownDiscriminant.
type VariantSet []uint32

// Variants builds a VariantSet from the given discriminant values.
func Variants(vs ...uint32) VariantSet {
	return VariantSet(vs)
}

// Contains reports whether d is a known discriminant.
func (s VariantSet) Contains(d uint32) bool {
	for _, v := range s {
		if v == d {
			return true
		}
	}
	return false
}

// optionalVariants is the bool-discriminated union of RFC 4506 Section 4.19.
var optionalVariants = Variants(0, 1)

// ============================================================================
// Top-Level Entry Points
// ============================================================================

// Marshal encodes v and returns its XDR encoding. Encoding the same logical
// value always produces the same bytes.
func Marshal(v Marshaler) ([]byte, error) {
	enc := NewEncoder()
	if err := v.EncodeXDR(enc); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

// Unmarshal decodes data into v and returns the number of bytes consumed.
// Trailing bytes beyond the decoded value are not an error; RPC framing
// routinely concatenates messages. On failure the consumed count is zero and
// no usable partial value exists.
func Unmarshal(data []byte, v Unmarshaler, opts ...Option) (int, error) {
	dec := NewDecoder(data, opts...)
	if err := v.DecodeXDR(dec); err != nil {
		return 0, err
	}
	return dec.Consumed(), nil
}
