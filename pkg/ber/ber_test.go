package ber

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagString(t *testing.T) {
	assert.Equal(t, "APPLICATION(3)", Application(3).String())
	assert.Equal(t, "CONTEXT(17)", Context(17).String())
	assert.Equal(t, "UNIVERSAL(17)", TagSet.String())
	assert.Equal(t, Tag(0x63), Application(3))
	assert.Equal(t, Tag(0xA0), Context(0))
	assert.True(t, Context(2).IsConstructed())
	assert.Equal(t, uint8(11), Application(11).Number())
}

func TestPrimitivesRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Sequence(Application(1), func(w *Writer) {
		w.Sequence(Context(0), func(w *Writer) { w.WriteInt(-129) })
		w.Sequence(Context(1), func(w *Writer) { w.WriteString("gain") })
		w.Sequence(Context(2), func(w *Writer) { w.WriteBool(true) })
		w.Sequence(Context(3), func(w *Writer) { w.WriteOctets([]byte{0xDE, 0xAD}) })
		w.Sequence(Context(4), func(w *Writer) { w.WriteReal(-12.5) })
		w.Sequence(Context(5), func(w *Writer) { w.WriteNull() })
	})
	data, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(data)
	seq, err := r.GetSequence(Application(1))
	require.NoError(t, err)
	assert.True(t, r.Empty())

	tag, f, err := seq.ReadSequence()
	require.NoError(t, err)
	assert.Equal(t, Context(0), tag)
	i, err := f.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, int64(-129), i)

	_, f, err = seq.ReadSequence()
	require.NoError(t, err)
	s, err := f.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "gain", s)

	_, f, err = seq.ReadSequence()
	require.NoError(t, err)
	b, err := f.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	_, f, err = seq.ReadSequence()
	require.NoError(t, err)
	o, err := f.ReadOctets()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD}, o)

	_, f, err = seq.ReadSequence()
	require.NoError(t, err)
	v, err := f.ReadReal()
	require.NoError(t, err)
	assert.Equal(t, -12.5, v)

	_, f, err = seq.ReadSequence()
	require.NoError(t, err)
	require.NoError(t, f.ReadNull())

	assert.True(t, seq.Empty())
}

func TestValueRoundTrip(t *testing.T) {
	values := []Value{
		Integer(0),
		Integer(math.MaxInt64),
		Integer(math.MinInt64),
		Real(3.25),
		Real(1e-300),
		Real(6.02214076e23),
		String(""),
		String("ümlaut"),
		Boolean(false),
		Octets{0x00, 0x01},
		Null{},
	}
	for _, want := range values {
		w := NewWriter()
		w.WriteValue(want)
		data, err := w.Bytes()
		require.NoError(t, err)

		got, err := NewReader(data).ReadValue()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRealSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		enc  []byte
	}{
		{"zero", 0, nil},
		{"one", 1, []byte{0x80, 0x00, 0x01}},
		{"half", 0.5, []byte{0x80, 0xFF, 0x01}},
		{"plus infinity", math.Inf(1), []byte{0x40}},
		{"minus infinity", math.Inf(-1), []byte{0x41}},
		{"minus zero", math.Copysign(0, -1), []byte{0x43}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := encodeReal(tt.in)
			assert.Equal(t, tt.enc, enc)
			dec, err := decodeReal(enc)
			require.NoError(t, err)
			assert.Equal(t, math.Float64bits(tt.in), math.Float64bits(dec))
		})
	}

	nan, err := decodeReal(encodeReal(math.NaN()))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nan))
}

func TestRealDecimalForm(t *testing.T) {
	v, err := decodeReal(append([]byte{0x03}, " 1,5E2"...))
	require.NoError(t, err)
	assert.Equal(t, 150.0, v)
}

func TestRealBase16(t *testing.T) {
	// base 16, exponent 1, mantissa 3 -> 3 * 16
	v, err := decodeReal([]byte{0xA0, 0x01, 0x03})
	require.NoError(t, err)
	assert.Equal(t, 48.0, v)
}

func TestReaderErrors(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		_, err := NewReader([]byte{0x60, 0x05, 0x01}).GetSequence(Application(0))
		assert.True(t, errors.Is(err, ErrMalformed))
	})

	t.Run("wrong tag", func(t *testing.T) {
		_, err := NewReader([]byte{0x61, 0x00}).GetSequence(Application(0))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
		assert.Contains(t, err.Error(), "APPLICATION(1)")
	})

	t.Run("peek empty", func(t *testing.T) {
		_, err := NewReader(nil).Peek()
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("indefinite length", func(t *testing.T) {
		_, _, err := NewReader([]byte{0x60, 0x80, 0x00, 0x00}).ReadSequence()
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("non-minimal long-form length", func(t *testing.T) {
		_, _, err := NewReader([]byte{0x60, 0x81, 0x01, 0x00}).ReadSequence()
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("string where integer expected", func(t *testing.T) {
		w := NewWriter()
		w.WriteString("x")
		data, err := w.Bytes()
		require.NoError(t, err)
		_, err = NewReader(data).ReadInt()
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestBooleanAcceptsAnyNonZero(t *testing.T) {
	b, err := NewReader([]byte{0x01, 0x01, 0x01}).ReadBool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestReaderEnd(t *testing.T) {
	r := NewReader([]byte{0x02, 0x01, 0x20, 0x02, 0x01, 0x05})
	v, err := r.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, int64(32), v)

	err = r.End()
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "3 trailing bytes")

	_, err = r.ReadInt()
	require.NoError(t, err)
	assert.NoError(t, r.End())
}
