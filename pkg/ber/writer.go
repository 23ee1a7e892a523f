package ber

import (
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// Writer builds a BER encoding using definite lengths.
type Writer struct {
	b *cryptobyte.Builder
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{b: cryptobyte.NewBuilder(nil)}
}

// Sequence writes a constructed TLV with the given tag. Everything f writes
// becomes its contents.
func (w *Writer) Sequence(tag Tag, f func(w *Writer)) {
	w.b.AddASN1(asn1.Tag(tag), func(child *cryptobyte.Builder) {
		f(&Writer{b: child})
	})
}

// WriteInt writes a universal INTEGER.
func (w *Writer) WriteInt(v int64) {
	w.b.AddASN1Int64(v)
}

// WriteBool writes a universal BOOLEAN using 0xFF for true.
func (w *Writer) WriteBool(v bool) {
	w.b.AddASN1(asn1.BOOLEAN, func(child *cryptobyte.Builder) {
		if v {
			child.AddUint8(0xFF)
		} else {
			child.AddUint8(0x00)
		}
	})
}

// WriteString writes a UTF8String.
func (w *Writer) WriteString(v string) {
	w.b.AddASN1(asn1.UTF8String, func(child *cryptobyte.Builder) {
		child.AddBytes([]byte(v))
	})
}

// WriteOctets writes an OCTET STRING.
func (w *Writer) WriteOctets(v []byte) {
	w.b.AddASN1OctetString(v)
}

// WriteReal writes a REAL using base 2 binary encoding.
func (w *Writer) WriteReal(v float64) {
	w.b.AddASN1(asn1.Tag(TagReal), func(child *cryptobyte.Builder) {
		child.AddBytes(encodeReal(v))
	})
}

// WriteNull writes a NULL.
func (w *Writer) WriteNull() {
	w.b.AddASN1(asn1.NULL, func(*cryptobyte.Builder) {})
}

// WriteValue writes v with the primitive matching its type.
func (w *Writer) WriteValue(v Value) {
	switch v := v.(type) {
	case Integer:
		w.WriteInt(int64(v))
	case Real:
		w.WriteReal(float64(v))
	case String:
		w.WriteString(string(v))
	case Boolean:
		w.WriteBool(bool(v))
	case Octets:
		w.WriteOctets(v)
	case Null, nil:
		w.WriteNull()
	}
}

// Bytes returns the encoding built so far.
func (w *Writer) Bytes() ([]byte, error) {
	return w.b.Bytes()
}
