package glow

import "github.com/ember-protocol/ember-go/pkg/ber"

// NodeContents are the attributes of a Node. Nil fields are absent.
type NodeContents struct {
	Identifier        *string
	Description       *string
	IsRoot            *bool
	IsOnline          *bool
	SchemaIdentifiers *string
}

// Online reports IsOnline, which defaults to true when absent.
func (c *NodeContents) Online() bool {
	return c.IsOnline == nil || *c.IsOnline
}

func decodeNodeContents(r *ber.Reader) (*NodeContents, error) {
	set, err := r.GetSequence(ber.TagSet)
	if err != nil {
		return nil, err
	}
	c := &NodeContents{}
	for !set.Empty() {
		tag, field, err := set.ReadSequence()
		if err != nil {
			return nil, err
		}
		switch tag {
		case ctx(0):
			c.Identifier, err = readString(field)
		case ctx(1):
			c.Description, err = readString(field)
		case ctx(2):
			c.IsRoot, err = readBool(field)
		case ctx(3):
			c.IsOnline, err = readBool(field)
		case ctx(4):
			c.SchemaIdentifiers, err = readString(field)
		default:
			return nil, unsupported(tag)
		}
		if err == nil {
			err = field.End()
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *NodeContents) encode(w *ber.Writer) {
	w.Sequence(ber.TagSet, func(w *ber.Writer) {
		writeField(w, 0, c.Identifier, writeString)
		writeField(w, 1, c.Description, writeString)
		writeField(w, 2, c.IsRoot, writeBool)
		writeField(w, 3, c.IsOnline, writeBool)
		writeField(w, 4, c.SchemaIdentifiers, writeString)
	})
}
