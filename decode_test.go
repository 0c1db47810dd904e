package xdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScalars(t *testing.T) {
	d := NewDecoder([]byte{
		0x00, 0x00, 0x00, 0x01, // uint32 1
		0xFF, 0xFF, 0xFF, 0xFF, // int32 -1
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2A, // uint64 42
		0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // float64 1.0
	})

	u, err := d.DecodeUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), u)

	i, err := d.DecodeInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), i)

	h, err := d.DecodeUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), h)

	f, err := d.DecodeFloat64()
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)

	assert.Equal(t, 24, d.Consumed())
	assert.Zero(t, d.Remaining())
}

func TestDecodeBool(t *testing.T) {
	d := NewDecoder([]byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00})
	v, err := d.DecodeBool()
	require.NoError(t, err)
	assert.True(t, v)
	v, err = d.DecodeBool()
	require.NoError(t, err)
	assert.False(t, v)
}

func TestDecodeBoolInvalid(t *testing.T) {
	d := NewDecoder([]byte{0x00, 0x00, 0x00, 0x02})
	_, err := d.DecodeBool()
	assert.ErrorIs(t, err, ErrInvalidBool)
}

func TestDecodeOpaque(t *testing.T) {
	d := NewDecoder([]byte{
		0x00, 0x00, 0x00, 0x02,
		0x61, 0x62, 0x00, 0x00,
	})
	b, err := d.DecodeOpaque()
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), b)
	assert.Equal(t, 8, d.Consumed())
}

func TestDecodeOpaqueTruncated(t *testing.T) {
	// Claims 10 bytes, carries 2. Must fail before any allocation of the
	// declared size.
	d := NewDecoder([]byte{
		0x00, 0x00, 0x00, 0x0A,
		0x61, 0x62,
	})
	_, err := d.DecodeOpaque()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestDecodeOpaqueTooLarge(t *testing.T) {
	d := NewDecoder([]byte{
		0xFF, 0xFF, 0xFF, 0x00,
		0x61, 0x62,
	})
	_, err := d.DecodeOpaque()
	assert.ErrorIs(t, err, ErrCollectionTooLarge)
}

func TestDecodeOpaqueCustomBound(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x04,
		0x64, 0x61, 0x74, 0x61,
	}

	d := NewDecoder(data, WithMaxCollectionLen(3))
	_, err := d.DecodeOpaque()
	assert.ErrorIs(t, err, ErrCollectionTooLarge)

	d = NewDecoder(data, WithMaxCollectionLen(4))
	b, err := d.DecodeOpaque()
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), b)
}

func TestDecodeOpaquePadding(t *testing.T) {
	dirty := []byte{
		0x00, 0x00, 0x00, 0x02,
		0x61, 0x62, 0xFF, 0xFF, // non-zero padding
	}

	t.Run("Strict", func(t *testing.T) {
		d := NewDecoder(dirty)
		_, err := d.DecodeOpaque()
		assert.ErrorIs(t, err, ErrInvalidPadding)
	})

	t.Run("Lenient", func(t *testing.T) {
		d := NewDecoder(dirty, WithLenientPadding())
		b, err := d.DecodeOpaque()
		require.NoError(t, err)
		assert.Equal(t, []byte("ab"), b)
		assert.Equal(t, 8, d.Consumed())
	})
}

func TestDecodeString(t *testing.T) {
	d := NewDecoder([]byte{
		0x00, 0x00, 0x00, 0x03,
		0x61, 0x62, 0x63, 0x00,
	})
	s, err := d.DecodeString()
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestDecodeFixedOpaque(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02, 0x03, 0x00})
	b, err := d.DecodeFixedOpaque(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, b)
	assert.Equal(t, 4, d.Consumed())
}

func TestDecodeFixedOpaqueDoesNotAliasInput(t *testing.T) {
	input := []byte{0x01, 0x02, 0x03, 0x04}
	d := NewDecoder(input)
	b, err := d.DecodeFixedOpaque(4)
	require.NoError(t, err)
	input[0] = 0xFF
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b)
}

func TestDecodeSequence(t *testing.T) {
	d := NewDecoder([]byte{
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
	})
	seq, err := d.DecodeSequence()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), seq.Len())

	var got []uint32
	for seq.More() {
		require.NoError(t, seq.Element(UnmarshalerFunc(func(d *Decoder) error {
			v, err := d.DecodeUint32()
			got = append(got, v)
			return err
		})))
	}
	require.NoError(t, seq.Close())
	assert.Equal(t, []uint32{1, 2}, got)
}

func TestDecodeSequenceCountTooLarge(t *testing.T) {
	d := NewDecoder([]byte{0x00, 0x10, 0x00, 0x01}, WithMaxCollectionLen(1<<20))
	_, err := d.DecodeSequence()
	assert.ErrorIs(t, err, ErrCollectionTooLarge)
}

func TestDecodeSequenceArity(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x07,
	}
	noop := UnmarshalerFunc(func(d *Decoder) error {
		_, err := d.DecodeUint32()
		return err
	})

	t.Run("TooManyElements", func(t *testing.T) {
		d := NewDecoder(data)
		seq, err := d.DecodeSequence()
		require.NoError(t, err)
		require.NoError(t, seq.Element(noop))
		assert.ErrorIs(t, seq.Element(noop), ErrArityMismatch)
	})

	t.Run("ClosedEarly", func(t *testing.T) {
		d := NewDecoder(data)
		seq, err := d.DecodeSequence()
		require.NoError(t, err)
		assert.ErrorIs(t, seq.Close(), ErrArityMismatch)
	})
}

func TestDecodeUnion(t *testing.T) {
	d := NewDecoder([]byte{
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x63,
	})
	u, err := d.DecodeUnion(Variants(0, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), u.Discriminant())

	var payload uint32
	require.NoError(t, u.Arm(UnmarshalerFunc(func(d *Decoder) error {
		v, err := d.DecodeUint32()
		payload = v
		return err
	})))
	require.NoError(t, u.Close())
	assert.Equal(t, uint32(99), payload)
}

func TestDecodeUnionUnknownDiscriminant(t *testing.T) {
	d := NewDecoder([]byte{
		0x00, 0x00, 0x00, 0x05,
		0xDE, 0xAD, 0xBE, 0xEF,
	})
	_, err := d.DecodeUnion(Variants(0, 1, 2))
	assert.ErrorIs(t, err, ErrUnknownDiscriminant)
	assert.Equal(t, 4, d.Consumed(), "no bytes beyond the discriminant consumed")
}

func TestDecodeOptional(t *testing.T) {
	t.Run("Absent", func(t *testing.T) {
		d := NewDecoder([]byte{0x00, 0x00, 0x00, 0x00})
		present, err := d.DecodeOptional(nil)
		require.NoError(t, err)
		assert.False(t, present)
	})

	t.Run("Present", func(t *testing.T) {
		d := NewDecoder([]byte{
			0x00, 0x00, 0x00, 0x01,
			0x00, 0x00, 0x00, 0x2A,
		})
		var got uint32
		present, err := d.DecodeOptional(UnmarshalerFunc(func(d *Decoder) error {
			v, err := d.DecodeUint32()
			got = v
			return err
		}))
		require.NoError(t, err)
		assert.True(t, present)
		assert.Equal(t, uint32(42), got)
	})

	t.Run("BadDiscriminant", func(t *testing.T) {
		d := NewDecoder([]byte{0x00, 0x00, 0x00, 0x02})
		_, err := d.DecodeOptional(nil)
		assert.ErrorIs(t, err, ErrUnknownDiscriminant)
	})
}

func TestDecodeEnum(t *testing.T) {
	known := Variants(0, 1, 2)

	d := NewDecoder([]byte{0x00, 0x00, 0x00, 0x02})
	v, err := d.DecodeEnum(known)
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)

	d = NewDecoder([]byte{0x00, 0x00, 0x00, 0x07})
	_, err = d.DecodeEnum(known)
	assert.ErrorIs(t, err, ErrUnknownDiscriminant)
}

func TestDecodeDepthLimit(t *testing.T) {
	// Struct scopes read no bytes, so empty input nests freely until the
	// counter trips.
	d := NewDecoder(nil, WithMaxDepth(2))

	s1, err := d.DecodeStruct()
	require.NoError(t, err)
	s2, err := d.DecodeStruct()
	require.NoError(t, err)

	_, err = d.DecodeStruct()
	assert.ErrorIs(t, err, ErrRecursionLimit)

	require.NoError(t, s2.Close())
	require.NoError(t, s1.Close())

	// Closing scopes frees depth for reuse.
	s3, err := d.DecodeStruct()
	require.NoError(t, err)
	require.NoError(t, s3.Close())
}

func TestDecodeEmptyInput(t *testing.T) {
	d := NewDecoder(nil)
	_, err := d.DecodeUint32()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}
