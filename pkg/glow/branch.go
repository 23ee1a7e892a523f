package glow

// BuildRequestBranch returns a new tree holding one number-only copy of
// every ancestor of node, from a fresh Root down to node itself, with
// payload attached below the copy of node. A nil payload is allowed.
//
// The branch addresses node on the provider side without restating any
// cached contents.
func BuildRequestBranch(node TreeNode, payload Element) *Root {
	child := payload
	for cur := node; cur != nil; cur = cur.Parent() {
		var m TreeNode
		switch n := cur.(type) {
		case *Root:
			r := NewRoot()
			if child != nil {
				r.AddChild(child)
			}
			return r
		case *Node:
			m = NewNode(n.Number())
		case *Parameter:
			m = NewParameter(n.Number())
		}
		if child != nil {
			m.AddChild(child)
		}
		child = m.(Element)
	}

	// node is not attached to a Root.
	r := NewRoot()
	if child != nil {
		r.AddChild(child)
	}
	return r
}

// GetDirectory queues cb to run once on the next merge into node and returns
// the request branch asking the provider for node's contents and children.
// The caller transmits the branch and feeds the response to Root.Merge.
func GetDirectory(node TreeNode, cb UpdateFunc) *Root {
	if cb != nil {
		b := node.base()
		b.pending = append(b.pending, cb)
	}
	return BuildRequestBranch(node, NewCommand(CommandGetDirectory))
}

// Subscribe registers cb to run after every merge into node until the
// returned cancel function is called.
func Subscribe(node TreeNode, cb UpdateFunc) (cancel func()) {
	b := node.base()
	s := &subscription{fn: cb}
	b.subscriptions = append(b.subscriptions, s)
	return func() {
		for i, cur := range b.subscriptions {
			if cur == s {
				s.cancelled.Store(true)
				b.subscriptions = append(b.subscriptions[:i:i], b.subscriptions[i+1:]...)
				return
			}
		}
	}
}

// PendingCallbacks returns the number of single-use callbacks queued on node.
func PendingCallbacks(node TreeNode) int {
	return len(node.base().pending)
}
