package glow

// Merge reconciles a decoded message into the cached tree r and returns the
// callbacks to run now that the merge is complete.
//
// Children are matched by number at every depth: unknown numbers are
// attached, known ones are merged recursively, and cached children missing
// from the incoming tree are kept. Contents present in the incoming element
// replace the cached contents as a whole. Commands are not cached.
//
// For every element merged into, the returned list holds its queued
// single-use callbacks (which are removed) followed by its subscriptions, in
// pre-order. Callbacks registered while the list runs wait for the next
// merge.
func (r *Root) Merge(incoming *Root) []func() {
	var out []func()
	mergeInto(r, incoming, &out)
	return out
}

func mergeInto(dst, src TreeNode, out *[]func()) {
	switch d := dst.(type) {
	case *Node:
		if s := src.(*Node); s.Contents != nil {
			d.Contents = s.Contents
		}
	case *Parameter:
		if s := src.(*Parameter); s.Contents != nil {
			d.Contents = s.Contents
		}
	}

	drain(dst, out)

	incoming := src.Children()
	if incoming == nil {
		return
	}
	b := dst.base()
	b.markChildrenKnown()
	for _, sc := range incoming {
		if _, ok := sc.(*Command); ok {
			continue
		}
		existing, idx := b.child(sc.Number())
		switch {
		case existing == nil:
			fresh := numberOnly(sc)
			dst.AddChild(fresh.(Element))
			mergeInto(fresh, sc.(TreeNode), out)
		case sameKind(existing, sc):
			mergeInto(existing.(TreeNode), sc.(TreeNode), out)
		default:
			fresh := numberOnly(sc)
			replaceChild(dst, idx, fresh)
			mergeInto(fresh, sc.(TreeNode), out)
		}
	}
}

// numberOnly returns an empty element of el's kind carrying its number.
// Incoming subtrees are merged into such copies so that nested Commands
// are dropped at every depth.
func numberOnly(el Element) TreeNode {
	if _, ok := el.(*Parameter); ok {
		return NewParameter(el.Number())
	}
	return NewNode(el.Number())
}

// replaceChild swaps a cached element for one of another kind at the same
// position, moving the callbacks queued on the old element.
func replaceChild(dst TreeNode, idx int, fresh TreeNode) {
	b := dst.base()
	old := b.children[idx]
	el := fresh.(Element)
	el.setParent(dst)
	b.children[idx] = el
	if oldNode, ok := old.(TreeNode); ok {
		ob, nb := oldNode.base(), fresh.base()
		nb.pending = append(nb.pending, ob.pending...)
		nb.subscriptions = append(nb.subscriptions, ob.subscriptions...)
		ob.pending, ob.subscriptions = nil, nil
	}
}

func sameKind(a, b Element) bool {
	switch a.(type) {
	case *Node:
		_, ok := b.(*Node)
		return ok
	case *Parameter:
		_, ok := b.(*Parameter)
		return ok
	}
	return false
}

// drain moves node's single-use callbacks and its subscriptions to out.
func drain(node TreeNode, out *[]func()) {
	b := node.base()
	pending := b.pending
	b.pending = nil
	for _, cb := range pending {
		*out = append(*out, func() { cb(node) })
	}
	for _, s := range b.subscriptions {
		*out = append(*out, func() {
			if !s.cancelled.Load() {
				s.fn(node)
			}
		})
	}
}
