package provider

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ember-protocol/ember-go/pkg/ber"
	"github.com/ember-protocol/ember-go/pkg/glow"
	"github.com/ember-protocol/ember-go/pkg/log"
)

// Provider errors.
var (
	ErrElementNotFound    = errors.New("element not found")
	ErrUnsupportedCommand = errors.New("unsupported command")
	ErrNotParameter       = errors.New("element is not a parameter")
)

// Config configures a Provider.
type Config struct {
	// Logger receives operational debug logs. Nil disables them.
	Logger *slog.Logger

	// ProtocolLogger captures requests and responses. Nil disables capture.
	ProtocolLogger log.Logger

	// ConnectionID tags captured events. A random UUID is used when empty.
	ConnectionID string
}

// Provider answers requests from its tree. It is safe for concurrent use.
type Provider struct {
	mu   sync.RWMutex
	tree *glow.Root

	logger   *slog.Logger
	protocol log.Logger
	connID   string
}

// New returns a Provider serving tree.
func New(tree *glow.Root, config Config) *Provider {
	connID := config.ConnectionID
	if connID == "" {
		connID = uuid.NewString()
	}
	return &Provider{
		tree:     tree,
		logger:   config.Logger,
		protocol: log.OrNoop(config.ProtocolLogger),
		connID:   connID,
	}
}

// Handle decodes one request message and returns the encoded response.
func (p *Provider) Handle(request []byte) ([]byte, error) {
	req, err := glow.Decode(request)
	p.logMessage(log.DirectionIn, log.MessageTypeRequest, len(request), req)
	if err != nil {
		p.logError(err, "decode")
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}

	resp, err := p.HandleRequest(req)
	if err != nil {
		p.logError(err, "request")
		return nil, err
	}

	data, err := glow.Encode(resp)
	if err != nil {
		return nil, err
	}
	p.logMessage(log.DirectionOut, log.MessageTypeResponse, len(data), resp)
	return data, nil
}

// HandleRequest answers every command found in req. Answers to several
// commands are combined into one response tree.
func (p *Provider) HandleRequest(req *glow.Root) (*glow.Root, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	resp := glow.NewRoot()
	err := walkCommands(req, nil, func(path []int32, cmd *glow.Command) error {
		if cmd.Number() != glow.CommandGetDirectory {
			return fmt.Errorf("%w: %d", ErrUnsupportedCommand, cmd.Number())
		}
		branch, err := p.directory(path)
		if err != nil {
			return err
		}
		resp.Merge(branch)
		p.debugLog("answered directory request", "path", log.FormatPath(path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// SetValue changes the value of the parameter at path and returns the
// notification message announcing it. Notifications carry the full contents
// because consumers replace contents as a whole.
func (p *Provider) SetValue(path []int32, value ber.Value) ([]byte, error) {
	p.mu.Lock()
	el, err := p.lookup(path)
	if err != nil {
		p.mu.Unlock()
		return nil, err
	}
	param, ok := el.(*glow.Parameter)
	if !ok {
		p.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotParameter, log.FormatPath(path))
	}
	if param.Contents == nil {
		param.Contents = &glow.ParameterContents{}
	}
	param.Contents.Value = value

	leaf := glow.NewParameter(param.Number())
	leaf.Contents = copyParameterContents(param.Contents)
	msg := branchTo(param.Parent(), leaf)
	p.mu.Unlock()

	data, err := glow.Encode(msg)
	if err != nil {
		return nil, err
	}
	p.logMessage(log.DirectionOut, log.MessageTypeNotification, len(data), msg)
	return data, nil
}

// directory builds the answer to GetDirectory at path: the addressed
// element with its contents and a copy of each child. Children of the
// copies stay unknown. p.mu must be held.
func (p *Provider) directory(path []int32) (*glow.Root, error) {
	var target glow.TreeNode = p.tree
	var reply glow.TreeNode = glow.NewRoot()
	if len(path) > 0 {
		el, err := p.lookup(path)
		if err != nil {
			return nil, err
		}
		tn, ok := el.(glow.TreeNode)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrElementNotFound, log.FormatPath(path))
		}
		target = tn
		reply = shallowCopy(el).(glow.TreeNode)
	}

	for _, child := range target.Children() {
		if _, ok := child.(*glow.Command); ok {
			continue
		}
		reply.AddChild(shallowCopy(child))
	}
	// an element without children answers with an empty collection
	glow.MarkChildrenKnown(reply)

	if r, ok := reply.(*glow.Root); ok {
		return r, nil
	}
	return branchTo(target.Parent(), reply.(glow.Element)), nil
}

// lookup returns the element at path. p.mu must be held.
func (p *Provider) lookup(path []int32) (glow.Element, error) {
	var node glow.TreeNode = p.tree
	var el glow.Element
	for i, n := range path {
		el = glow.GetElement(node, glow.NumberSegment(n))
		if el == nil {
			return nil, fmt.Errorf("%w: %s", ErrElementNotFound, log.FormatPath(path[:i+1]))
		}
		if i < len(path)-1 {
			tn, ok := el.(glow.TreeNode)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrElementNotFound, log.FormatPath(path[:i+2]))
			}
			node = tn
		}
	}
	return el, nil
}

// walkCommands calls fn with the number path of every command in the tree
// below node.
func walkCommands(node glow.TreeNode, path []int32, fn func([]int32, *glow.Command) error) error {
	for _, child := range node.Children() {
		switch c := child.(type) {
		case *glow.Command:
			if err := fn(path, c); err != nil {
				return err
			}
		case glow.TreeNode:
			sub := append(path[:len(path):len(path)], child.Number())
			if err := walkCommands(c, sub, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// branchTo wraps leaf in number-only copies of parent and its ancestors.
func branchTo(parent glow.TreeNode, leaf glow.Element) *glow.Root {
	if _, ok := parent.(*glow.Root); ok || parent == nil {
		r := glow.NewRoot()
		r.AddChild(leaf)
		return r
	}
	return glow.BuildRequestBranch(parent, leaf)
}

func (p *Provider) logMessage(dir log.Direction, typ log.MessageType, size int, msg *glow.Root) {
	ev := &log.MessageEvent{Type: typ, Size: size}
	if msg != nil {
		ev.Elements = len(msg.Children())
	}
	p.protocol.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: p.connID,
		Direction:    dir,
		Layer:        log.LayerCodec,
		Category:     log.CategoryMessage,
		LocalRole:    log.RoleProvider,
		Message:      ev,
	})
}

func (p *Provider) logError(err error, context string) {
	p.protocol.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: p.connID,
		Direction:    log.DirectionIn,
		Layer:        log.LayerCodec,
		Category:     log.CategoryError,
		LocalRole:    log.RoleProvider,
		Error:        &log.ErrorEventData{Layer: log.LayerCodec, Message: err.Error(), Context: context},
	})
	p.debugLog("request failed", "context", context, "error", err)
}

func (p *Provider) debugLog(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
