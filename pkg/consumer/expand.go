package consumer

import (
	"sync"
	"sync/atomic"

	"github.com/ember-protocol/ember-go/pkg/glow"
)

// Expand fetches the whole remote tree below node: every Node, and node
// itself, whose children are unknown gets a directory request, recursively.
// Parameters are not expanded. done runs once, with nil after the last
// response is merged or with the first send error.
func (c *Consumer) Expand(node glow.TreeNode, done func(err error)) {
	e := &expansion{c: c, done: done}
	e.outstanding.Add(1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		e.finish(ErrClosed)
		return
	}
	reqs, err := e.visit(node, nil)
	c.mu.Unlock()

	e.sendAll(reqs, err)
}

type expansion struct {
	c           *Consumer
	done        func(error)
	outstanding atomic.Int64
	once        sync.Once
}

// visit queues directory requests for n or its Node children.
// e.c.mu must be held.
func (e *expansion) visit(n glow.TreeNode, reqs [][]byte) ([][]byte, error) {
	if !n.ChildrenKnown() {
		e.outstanding.Add(1)
		data, err := e.c.directoryRequest(n, e.fetched)
		if err != nil {
			return reqs, err
		}
		return append(reqs, data), nil
	}
	return e.visitChildren(n, reqs)
}

func (e *expansion) visitChildren(n glow.TreeNode, reqs [][]byte) ([][]byte, error) {
	var err error
	for _, child := range n.Children() {
		nd, ok := child.(*glow.Node)
		if !ok {
			continue
		}
		if reqs, err = e.visit(nd, reqs); err != nil {
			return reqs, err
		}
	}
	return reqs, nil
}

// fetched continues below a node whose directory was merged. The node
// itself is not requested again even if the response left its children
// unknown.
func (e *expansion) fetched(n glow.TreeNode) {
	e.outstanding.Add(1)

	e.c.mu.Lock()
	if e.c.closed {
		e.c.mu.Unlock()
		e.finish(ErrClosed)
		return
	}
	reqs, err := e.visitChildren(n, nil)
	e.c.mu.Unlock()

	e.sendAll(reqs, err)
	e.finish(nil)
}

// sendAll transmits reqs and then releases the caller's own count.
func (e *expansion) sendAll(reqs [][]byte, err error) {
	if err != nil {
		e.finish(err)
		return
	}
	for _, data := range reqs {
		if err := e.c.send(data); err != nil {
			e.finish(err)
			return
		}
	}
	e.finish(nil)
}

// finish releases one outstanding count. An error completes the expansion
// immediately.
func (e *expansion) finish(err error) {
	if err != nil {
		e.once.Do(func() { e.done(err) })
		return
	}
	if e.outstanding.Add(-1) == 0 {
		e.once.Do(func() { e.done(nil) })
	}
}
