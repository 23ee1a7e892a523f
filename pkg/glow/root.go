package glow

import (
	"fmt"

	"github.com/ember-protocol/ember-go/pkg/ber"
)

// Root is the synthetic top of an element tree and the envelope of every
// message. It carries no number and no contents.
type Root struct {
	treeNode
}

// NewRoot returns an empty Root whose children are unknown.
func NewRoot() *Root {
	return &Root{}
}

// AddChild attaches a top-level element.
func (r *Root) AddChild(child Element) {
	r.addChild(r, child)
}

// Decode parses one Root envelope.
func Decode(data []byte) (*Root, error) {
	rd := ber.NewReader(data)
	root, err := decodeRoot(rd)
	if err != nil {
		return nil, err
	}
	if !rd.Empty() {
		return nil, fmt.Errorf("%w: %d trailing bytes after root", ber.ErrMalformed, rd.Remain())
	}
	return root, nil
}

// Encode serialises r. A root without known children encodes as an empty
// envelope.
func Encode(r *Root) ([]byte, error) {
	w := ber.NewWriter()
	r.encode(w)
	data, err := w.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode root: %w", err)
	}
	return data, nil
}

func decodeRoot(rd *ber.Reader) (*Root, error) {
	env, err := rd.GetSequence(tagRoot)
	if err != nil {
		return nil, err
	}
	r := NewRoot()
	if env.Empty() {
		return r, nil
	}

	tag, coll, err := env.ReadSequence()
	if err != nil {
		return nil, err
	}
	if tag != tagRootElementCollection {
		return nil, unsupported(tag)
	}
	r.markChildrenKnown()
	if err := decodeCollection(coll, r); err != nil {
		return nil, err
	}
	if !env.Empty() {
		return nil, fmt.Errorf("%w: unexpected data after root element collection", ber.ErrMalformed)
	}
	return r, nil
}

func (r *Root) encode(w *ber.Writer) {
	w.Sequence(tagRoot, func(w *ber.Writer) {
		if r.children == nil {
			return
		}
		w.Sequence(tagRootElementCollection, func(w *ber.Writer) {
			encodeCollection(w, r.children)
		})
	})
}
