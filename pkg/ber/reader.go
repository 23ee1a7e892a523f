package ber

import (
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// Reader is a forward-only cursor over BER encoded data.
type Reader struct {
	s cryptobyte.String
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{s: cryptobyte.String(data)}
}

// Remain returns the number of unread bytes.
func (r *Reader) Remain() int {
	return len(r.s)
}

// Empty reports whether all bytes have been consumed.
func (r *Reader) Empty() bool {
	return r.s.Empty()
}

// End fails with ErrMalformed if bytes remain unread. Decoders call it on a
// field once its single value has been read.
func (r *Reader) End() error {
	if !r.s.Empty() {
		return malformed("%d trailing bytes at %s", len(r.s), r.head())
	}
	return nil
}

// Peek returns the tag of the next TLV without consuming it.
func (r *Reader) Peek() (Tag, error) {
	if r.s.Empty() {
		return 0, malformed("unexpected end of data")
	}
	return Tag(r.s[0]), nil
}

// ReadSequence consumes the next TLV, whatever its tag, and returns the tag
// together with a Reader over its contents.
func (r *Reader) ReadSequence() (Tag, *Reader, error) {
	var (
		out cryptobyte.String
		tag asn1.Tag
	)
	if !r.s.ReadAnyASN1(&out, &tag) {
		return 0, nil, malformed("invalid TLV at %s", r.head())
	}
	return Tag(tag), &Reader{s: out}, nil
}

// GetSequence consumes the next TLV, which must carry tag, and returns a
// Reader over its contents.
func (r *Reader) GetSequence(tag Tag) (*Reader, error) {
	var out cryptobyte.String
	if err := r.read(&out, tag); err != nil {
		return nil, err
	}
	return &Reader{s: out}, nil
}

// ReadInt reads a universal INTEGER.
func (r *Reader) ReadInt() (int64, error) {
	if !r.s.PeekASN1Tag(asn1.INTEGER) {
		return 0, r.unexpected(TagInteger)
	}
	var v int64
	if !r.s.ReadASN1Int64WithTag(&v, asn1.INTEGER) {
		return 0, malformed("invalid INTEGER")
	}
	return v, nil
}

// ReadBool reads a universal BOOLEAN. Any non-zero content octet is true.
func (r *Reader) ReadBool() (bool, error) {
	var out cryptobyte.String
	if err := r.read(&out, TagBoolean); err != nil {
		return false, err
	}
	if len(out) != 1 {
		return false, malformed("BOOLEAN with %d content octets", len(out))
	}
	return out[0] != 0, nil
}

// ReadString reads a UTF8String.
func (r *Reader) ReadString() (string, error) {
	var out cryptobyte.String
	if err := r.read(&out, TagUTF8String); err != nil {
		return "", err
	}
	return string(out), nil
}

// ReadOctets reads an OCTET STRING.
func (r *Reader) ReadOctets() ([]byte, error) {
	var out cryptobyte.String
	if err := r.read(&out, TagOctetString); err != nil {
		return nil, err
	}
	b := make([]byte, len(out))
	copy(b, out)
	return b, nil
}

// ReadReal reads a REAL.
func (r *Reader) ReadReal() (float64, error) {
	var out cryptobyte.String
	if err := r.read(&out, TagReal); err != nil {
		return 0, err
	}
	return decodeReal(out)
}

// ReadNull reads a NULL.
func (r *Reader) ReadNull() error {
	var out cryptobyte.String
	if err := r.read(&out, TagNull); err != nil {
		return err
	}
	if len(out) != 0 {
		return malformed("NULL with content")
	}
	return nil
}

// ReadValue reads whichever primitive comes next and returns it as a Value.
func (r *Reader) ReadValue() (Value, error) {
	tag, err := r.Peek()
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagInteger:
		v, err := r.ReadInt()
		return Integer(v), err
	case TagReal:
		v, err := r.ReadReal()
		return Real(v), err
	case TagUTF8String:
		v, err := r.ReadString()
		return String(v), err
	case TagBoolean:
		v, err := r.ReadBool()
		return Boolean(v), err
	case TagOctetString:
		v, err := r.ReadOctets()
		return Octets(v), err
	case TagNull:
		return Null{}, r.ReadNull()
	default:
		return nil, malformed("unexpected value type %s", tag)
	}
}

func (r *Reader) read(out *cryptobyte.String, tag Tag) error {
	if !r.s.PeekASN1Tag(asn1.Tag(tag)) {
		return r.unexpected(tag)
	}
	if !r.s.ReadASN1(out, asn1.Tag(tag)) {
		return malformed("invalid %s", tag)
	}
	return nil
}

func (r *Reader) unexpected(want Tag) error {
	return malformed("expected %s, got %s", want, r.head())
}

func (r *Reader) head() string {
	if r.s.Empty() {
		return "end of data"
	}
	return Tag(r.s[0]).String()
}
