package consumer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ember-protocol/ember-go/pkg/glow"
)

// ResolveFunc receives the result of a path resolution: the element's tree
// node, or an error.
type ResolveFunc func(node glow.TreeNode, err error)

// ResolvePath walks path from the cached root, fetching the children of a
// node whenever the next segment is not among them. Each missing segment
// costs one directory request; a segment still missing after its fetch
// fails the resolution with glow.ErrPathNotFound.
//
// cb runs exactly once, either synchronously when the path is already
// cached or from HandleMessage once the last needed response is merged.
func (c *Consumer) ResolvePath(path glow.Path, cb ResolveFunc) {
	var once sync.Once
	done := func(n glow.TreeNode, err error) {
		once.Do(func() { cb(n, err) })
	}
	c.resolve(c.root, path, false, done)
}

func (c *Consumer) resolve(node glow.TreeNode, path glow.Path, fetched bool, cb ResolveFunc) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		cb(nil, ErrClosed)
		return
	}

	for len(path) > 0 {
		seg := path[0]
		el := glow.GetElement(node, seg)
		if el == nil {
			break
		}
		next, ok := el.(glow.TreeNode)
		if !ok {
			c.mu.Unlock()
			cb(nil, fmt.Errorf("%w: %s", ErrNotTreeNode, seg))
			return
		}
		node, path, fetched = next, path[1:], false
	}

	if len(path) == 0 {
		c.mu.Unlock()
		cb(node, nil)
		return
	}
	if fetched {
		c.mu.Unlock()
		cb(nil, fmt.Errorf("%w: %s", glow.ErrPathNotFound, path[0]))
		return
	}

	remaining := path
	data, err := c.directoryRequest(node, func(n glow.TreeNode) {
		c.resolve(n, remaining, true, cb)
	})
	c.mu.Unlock()
	if err != nil {
		cb(nil, err)
		return
	}
	c.debugLog("resolving path", "segment", remaining[0].String())
	if err := c.send(data); err != nil {
		cb(nil, err)
	}
}

// ResolvePathContext resolves path and waits for the result. The wait ends
// with ErrRequestTimeout after Config.RequestTimeout, or with ctx's error.
func (c *Consumer) ResolvePathContext(ctx context.Context, path glow.Path) (glow.TreeNode, error) {
	ch := make(chan result, 1)
	c.ResolvePath(path, func(n glow.TreeNode, err error) {
		ch <- result{n, err}
	})
	return c.wait(ctx, ch)
}

// GetDirectoryContext fetches node's directory and waits for the merge.
func (c *Consumer) GetDirectoryContext(ctx context.Context, node glow.TreeNode) (glow.TreeNode, error) {
	ch := make(chan result, 1)
	err := c.GetDirectory(node, func(n glow.TreeNode) {
		select {
		case ch <- result{n, nil}:
		default:
		}
	})
	if err != nil {
		return nil, err
	}
	return c.wait(ctx, ch)
}

type result struct {
	node glow.TreeNode
	err  error
}

func (c *Consumer) wait(ctx context.Context, ch <-chan result) (glow.TreeNode, error) {
	if c.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.RequestTimeout)
		defer cancel()
	}
	select {
	case r := <-ch:
		return r.node, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrRequestTimeout
		}
		return nil, ctx.Err()
	}
}
