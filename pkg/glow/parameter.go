package glow

import "github.com/ember-protocol/ember-go/pkg/ber"

// Parameter is a typed value exposed by the provider.
type Parameter struct {
	treeNode
	number int32

	// Contents is nil until fetched.
	Contents *ParameterContents
}

// NewParameter returns a parameter with unknown contents and children.
func NewParameter(number int32) *Parameter {
	return &Parameter{number: number}
}

// Number returns the parameter number.
func (p *Parameter) Number() int32 { return p.number }

// AddChild attaches child below p.
func (p *Parameter) AddChild(child Element) {
	p.addChild(p, child)
}

// Identifier returns the contents identifier, or "" if unknown.
func (p *Parameter) Identifier() string {
	if p.Contents == nil || p.Contents.Identifier == nil {
		return ""
	}
	return *p.Contents.Identifier
}

// Value returns the current value, or nil if unknown.
func (p *Parameter) Value() ber.Value {
	if p.Contents == nil {
		return nil
	}
	return p.Contents.Value
}

func decodeParameter(r *ber.Reader) (*Parameter, error) {
	seq, err := r.GetSequence(tagParameter)
	if err != nil {
		return nil, err
	}
	p := &Parameter{}
	err = decodeBody(seq, p, &p.number, func(field *ber.Reader) error {
		c, err := decodeParameterContents(field)
		p.Contents = c
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parameter) encode(w *ber.Writer) {
	var contents func(*ber.Writer)
	if p.Contents != nil {
		contents = p.Contents.encode
	}
	w.Sequence(tagParameter, func(w *ber.Writer) {
		encodeBody(w, p.number, contents, p.children)
	})
}
