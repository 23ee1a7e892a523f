package glow

import (
	"fmt"
	"sync/atomic"

	"github.com/ember-protocol/ember-go/pkg/ber"
)

// Element is one typed entry of an element collection: *Node, *Parameter or
// *Command.
type Element interface {
	// Number returns the element's identity among its siblings.
	Number() int32

	// Parent returns the element the receiver is attached to, or nil.
	Parent() TreeNode

	setParent(p TreeNode)
	encode(w *ber.Writer)
}

// TreeNode is an element that can hold children: *Root, *Node or *Parameter.
type TreeNode interface {
	// Parent returns the owning node; nil for a Root or a detached node.
	Parent() TreeNode

	// Children returns the known children in attach order. A nil result
	// means the children have not been fetched.
	Children() []Element

	// ChildrenKnown reports whether Children holds a fetched list, possibly
	// empty.
	ChildrenKnown() bool

	// AddChild appends child and makes the receiver its parent.
	AddChild(child Element)

	base() *treeNode
}

// UpdateFunc receives a node after a merge into it completed.
type UpdateFunc func(node TreeNode)

type subscription struct {
	fn        UpdateFunc
	cancelled atomic.Bool
}

// treeNode holds what Root, Node and Parameter share.
type treeNode struct {
	parent   TreeNode
	children []Element

	// single-use callbacks, drained on the next merge
	pending []UpdateFunc

	// persistent callbacks, run on every merge
	subscriptions []*subscription
}

func (t *treeNode) Parent() TreeNode     { return t.parent }
func (t *treeNode) Children() []Element  { return t.children }
func (t *treeNode) setParent(p TreeNode) { t.parent = p }
func (t *treeNode) base() *treeNode      { return t }

func (t *treeNode) ChildrenKnown() bool { return t.children != nil }

func (t *treeNode) addChild(self TreeNode, child Element) {
	child.setParent(self)
	t.children = append(t.children, child)
}

// markChildrenKnown turns unknown children into a known empty list.
func (t *treeNode) markChildrenKnown() {
	if t.children == nil {
		t.children = []Element{}
	}
}

// MarkChildrenKnown records that node has been told its children, turning
// an unknown child list into a known empty one.
func MarkChildrenKnown(node TreeNode) {
	node.base().markChildrenKnown()
}

func (t *treeNode) child(number int32) (Element, int) {
	for i, c := range t.children {
		if c.Number() == number {
			return c, i
		}
	}
	return nil, -1
}

// decodeElement dispatches on the tag at the head of r.
func decodeElement(r *ber.Reader) (Element, error) {
	tag, err := r.Peek()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagParameter:
		return decodeParameter(r)
	case tagNode:
		return decodeNode(r)
	case tagCommand:
		return decodeCommand(r)
	default:
		return nil, unsupported(tag)
	}
}

// decodeCollection reads "[0] element" entries and attaches them to parent.
// Several elements inside one [0] wrapper are accepted as well.
func decodeCollection(r *ber.Reader, parent TreeNode) error {
	for !r.Empty() {
		wrapper, err := r.GetSequence(ctx(0))
		if err != nil {
			return err
		}
		for !wrapper.Empty() {
			el, err := decodeElement(wrapper)
			if err != nil {
				return err
			}
			parent.AddChild(el)
		}
	}
	return nil
}

func encodeCollection(w *ber.Writer, children []Element) {
	for _, c := range children {
		w.Sequence(ctx(0), c.encode)
	}
}

// decodeBody reads the number, contents and children fields shared by Node
// and Parameter.
func decodeBody(seq *ber.Reader, self TreeNode, number *int32, contents func(*ber.Reader) error) error {
	hasNumber := false
	for !seq.Empty() {
		tag, field, err := seq.ReadSequence()
		if err != nil {
			return err
		}
		switch tag {
		case ctx(0):
			if *number, err = readNumber(field); err != nil {
				return err
			}
			hasNumber = true
		case ctx(1):
			if err := contents(field); err != nil {
				return err
			}
		case ctx(2):
			coll, err := field.GetSequence(tagElementCollection)
			if err != nil {
				return err
			}
			self.base().markChildrenKnown()
			if err := decodeCollection(coll, self); err != nil {
				return err
			}
		default:
			return unsupported(tag)
		}
		if err := field.End(); err != nil {
			return err
		}
	}
	if !hasNumber {
		return ErrMissingNumber
	}
	return nil
}

func encodeBody(w *ber.Writer, number int32, contents func(*ber.Writer), children []Element) {
	w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteInt(int64(number)) })
	if contents != nil {
		w.Sequence(ctx(1), contents)
	}
	if children != nil {
		w.Sequence(ctx(2), func(w *ber.Writer) {
			w.Sequence(tagElementCollection, func(w *ber.Writer) {
				encodeCollection(w, children)
			})
		})
	}
}

func readNumber(r *ber.Reader) (int32, error) {
	v, err := r.ReadInt()
	if err != nil {
		return 0, err
	}
	if v < -1<<31 || v > 1<<31-1 {
		return 0, fmt.Errorf("%w: number %d out of range", ber.ErrMalformed, v)
	}
	return int32(v), nil
}
