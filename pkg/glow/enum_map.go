package glow

import (
	"fmt"

	"github.com/ember-protocol/ember-go/pkg/ber"
)

// StringIntegerPair is one entry of an enumeration map.
type StringIntegerPair struct {
	Key   string
	Value int64
}

// StringIntegerCollection is an ordered enumeration map. Entry order is kept
// on the wire.
type StringIntegerCollection []StringIntegerPair

// Lookup returns the value stored for key.
func (c StringIntegerCollection) Lookup(key string) (int64, bool) {
	for _, p := range c {
		if p.Key == key {
			return p.Value, true
		}
	}
	return 0, false
}

func decodeStringIntegerCollection(r *ber.Reader) (StringIntegerCollection, error) {
	seq, err := r.GetSequence(tagStringIntegerCollection)
	if err != nil {
		return nil, err
	}
	c := StringIntegerCollection{}
	for !seq.Empty() {
		wrapper, err := seq.GetSequence(ctx(0))
		if err != nil {
			return nil, err
		}
		for !wrapper.Empty() {
			p, err := decodeStringIntegerPair(wrapper)
			if err != nil {
				return nil, err
			}
			c = append(c, p)
		}
	}
	return c, nil
}

func decodeStringIntegerPair(r *ber.Reader) (StringIntegerPair, error) {
	var p StringIntegerPair
	seq, err := r.GetSequence(tagStringIntegerPair)
	if err != nil {
		return p, err
	}
	var hasKey, hasValue bool
	for !seq.Empty() {
		tag, field, err := seq.ReadSequence()
		if err != nil {
			return p, err
		}
		switch tag {
		case ctx(0):
			if p.Key, err = field.ReadString(); err != nil {
				return p, err
			}
			hasKey = true
		case ctx(1):
			if p.Value, err = field.ReadInt(); err != nil {
				return p, err
			}
			hasValue = true
		default:
			return p, unsupported(tag)
		}
		if err := field.End(); err != nil {
			return p, err
		}
	}
	if !hasKey || !hasValue {
		return p, fmt.Errorf("%w: incomplete enumeration entry", ber.ErrMalformed)
	}
	return p, nil
}

func (c StringIntegerCollection) encode(w *ber.Writer) {
	w.Sequence(tagStringIntegerCollection, func(w *ber.Writer) {
		for _, p := range c {
			w.Sequence(ctx(0), func(w *ber.Writer) {
				w.Sequence(tagStringIntegerPair, func(w *ber.Writer) {
					w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteString(p.Key) })
					w.Sequence(ctx(1), func(w *ber.Writer) { w.WriteInt(p.Value) })
				})
			})
		}
	})
}
