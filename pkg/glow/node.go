package glow

import "github.com/ember-protocol/ember-go/pkg/ber"

// Node is a structural element grouping parameters, commands and other
// nodes.
type Node struct {
	treeNode
	number int32

	// Contents is nil until fetched.
	Contents *NodeContents
}

// NewNode returns a node with unknown contents and children.
func NewNode(number int32) *Node {
	return &Node{number: number}
}

// Number returns the node number.
func (n *Node) Number() int32 { return n.number }

// AddChild attaches child below n.
func (n *Node) AddChild(child Element) {
	n.addChild(n, child)
}

// Identifier returns the contents identifier, or "" if unknown.
func (n *Node) Identifier() string {
	if n.Contents == nil || n.Contents.Identifier == nil {
		return ""
	}
	return *n.Contents.Identifier
}

func decodeNode(r *ber.Reader) (*Node, error) {
	seq, err := r.GetSequence(tagNode)
	if err != nil {
		return nil, err
	}
	n := &Node{}
	err = decodeBody(seq, n, &n.number, func(field *ber.Reader) error {
		c, err := decodeNodeContents(field)
		n.Contents = c
		return err
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Node) encode(w *ber.Writer) {
	var contents func(*ber.Writer)
	if n.Contents != nil {
		contents = n.Contents.encode
	}
	w.Sequence(tagNode, func(w *ber.Writer) {
		encodeBody(w, n.number, contents, n.children)
	})
}
