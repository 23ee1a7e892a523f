package consumer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ember-protocol/ember-go/pkg/glow"
	"github.com/ember-protocol/ember-go/pkg/log"
)

// Consumer errors.
var (
	ErrClosed         = errors.New("consumer is closed")
	ErrNotTreeNode    = errors.New("path continues below an element without children")
	ErrRequestTimeout = errors.New("request timed out")
)

// Sender transmits an encoded request branch to the provider. Responses are
// delivered separately through HandleMessage, possibly before Send returns.
type Sender interface {
	Send(data []byte) error
}

// Consumer is the controller side of an Ember+ session.
type Consumer struct {
	mu     sync.Mutex
	root   *glow.Root
	closed bool

	sender   Sender
	config   Config
	logger   *slog.Logger
	protocol log.Logger
	connID   string
}

// New returns a Consumer with an empty cached tree.
func New(sender Sender, config Config) *Consumer {
	connID := config.ConnectionID
	if connID == "" {
		connID = uuid.NewString()
	}
	return &Consumer{
		root:     glow.NewRoot(),
		sender:   sender,
		config:   config,
		logger:   config.Logger,
		protocol: log.OrNoop(config.ProtocolLogger),
		connID:   connID,
	}
}

// ConnectionID returns the identifier used in captured events.
func (c *Consumer) ConnectionID() string { return c.connID }

// Root returns the cached tree. See the package documentation for when it
// may be read without View.
func (c *Consumer) Root() *glow.Root { return c.root }

// View runs fn with exclusive access to the cached tree. fn must not call
// other Consumer methods.
func (c *Consumer) View(fn func(root *glow.Root)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.root)
}

// GetDirectory asks the provider for the contents and children of node.
// cb runs once, after the next merge into node.
func (c *Consumer) GetDirectory(node glow.TreeNode, cb glow.UpdateFunc) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	data, err := c.directoryRequest(node, cb)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.send(data)
}

// Subscribe registers cb to run after every merge into node. Calling the
// returned function removes it.
func (c *Consumer) Subscribe(node glow.TreeNode, cb glow.UpdateFunc) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	unsubscribe := glow.Subscribe(node, cb)
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		unsubscribe()
	}
}

// HandleMessage decodes one message from the provider, merges it into the
// cached tree and runs the callbacks it completed. Decode failures leave the
// cache untouched.
func (c *Consumer) HandleMessage(data []byte) error {
	msg, err := glow.Decode(data)
	c.logMessage(log.DirectionIn, log.MessageTypeResponse, msg, data)
	if err != nil {
		c.logError(log.LayerCodec, err, "decode")
		c.debugLog("dropping undecodable message", "size", len(data), "error", err)
		return fmt.Errorf("failed to decode message: %w", err)
	}

	start := time.Now()
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	callbacks := c.root.Merge(msg)
	c.mu.Unlock()

	c.protocol.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Direction:    log.DirectionIn,
		Layer:        log.LayerTree,
		Category:     log.CategoryMerge,
		LocalRole:    log.RoleConsumer,
		Merge: &log.MergeEvent{
			Elements:  len(msg.Children()),
			Callbacks: len(callbacks),
			Duration:  time.Since(start),
		},
	})
	c.debugLog("merged message", "elements", len(msg.Children()), "callbacks", len(callbacks))

	for _, fn := range callbacks {
		fn()
	}
	return nil
}

// Close stops the consumer. Later requests and messages fail with
// ErrClosed; callbacks still queued never run.
func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// directoryRequest queues cb on node and encodes the request branch.
// c.mu must be held.
func (c *Consumer) directoryRequest(node glow.TreeNode, cb glow.UpdateFunc) ([]byte, error) {
	branch := glow.GetDirectory(node, cb)
	data, err := glow.Encode(branch)
	if err != nil {
		return nil, err
	}
	c.logMessage(log.DirectionOut, log.MessageTypeRequest, branch, data)
	return data, nil
}

func (c *Consumer) send(data []byte) error {
	if err := c.sender.Send(data); err != nil {
		c.logError(log.LayerCodec, err, "send")
		return fmt.Errorf("failed to send request: %w", err)
	}
	c.debugLog("sent request", "size", len(data))
	return nil
}

func (c *Consumer) logMessage(dir log.Direction, typ log.MessageType, msg *glow.Root, data []byte) {
	if _, ok := c.protocol.(log.NoopLogger); ok {
		return
	}
	ev := &log.MessageEvent{Type: typ}
	ev.SetData(data)
	if msg != nil {
		ev.Elements = len(msg.Children())
		ev.Path, ev.Command = describeBranch(msg)
	}
	c.protocol.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Direction:    dir,
		Layer:        log.LayerCodec,
		Category:     log.CategoryMessage,
		LocalRole:    log.RoleConsumer,
		Message:      ev,
	})
}

func (c *Consumer) logError(layer log.Layer, err error, context string) {
	c.protocol.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Layer:        layer,
		Category:     log.CategoryError,
		LocalRole:    log.RoleConsumer,
		Error: &log.ErrorEventData{
			Layer:   layer,
			Message: err.Error(),
			Context: context,
		},
	})
}

func (c *Consumer) debugLog(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, append([]any{"conn_id", c.connID}, args...)...)
	}
}

// describeBranch follows single-child levels from the root and returns the
// numbers on the way and the command found at the end, if any.
func describeBranch(r *glow.Root) ([]int32, *int32) {
	var path []int32
	var node glow.TreeNode = r
	for {
		children := node.Children()
		if len(children) != 1 {
			return path, nil
		}
		child := children[0]
		if cmd, ok := child.(*glow.Command); ok {
			n := cmd.Number()
			return path, &n
		}
		next, ok := child.(glow.TreeNode)
		if !ok {
			return path, nil
		}
		path = append(path, child.Number())
		node = next
	}
}
