package glow

import "github.com/ember-protocol/ember-go/pkg/ber"

// Command is a leaf element naming an operation on its parent, e.g.
// CommandGetDirectory.
type Command struct {
	number int32
	parent TreeNode
}

// NewCommand returns a command with the given number.
func NewCommand(number int32) *Command {
	return &Command{number: number}
}

// Number returns the command number.
func (c *Command) Number() int32 { return c.number }

// Parent returns the element the command is attached to.
func (c *Command) Parent() TreeNode { return c.parent }

func (c *Command) setParent(p TreeNode) { c.parent = p }

func decodeCommand(r *ber.Reader) (*Command, error) {
	seq, err := r.GetSequence(tagCommand)
	if err != nil {
		return nil, err
	}
	c := &Command{}
	hasNumber := false
	for !seq.Empty() {
		tag, field, err := seq.ReadSequence()
		if err != nil {
			return nil, err
		}
		if tag != ctx(0) {
			return nil, unsupported(tag)
		}
		if c.number, err = readNumber(field); err != nil {
			return nil, err
		}
		if err := field.End(); err != nil {
			return nil, err
		}
		hasNumber = true
	}
	if !hasNumber {
		return nil, ErrMissingNumber
	}
	return c, nil
}

func (c *Command) encode(w *ber.Writer) {
	w.Sequence(tagCommand, func(w *ber.Writer) {
		w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteInt(int64(c.number)) })
	})
}
