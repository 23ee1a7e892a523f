package provider

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ember-protocol/ember-go/pkg/ber"
	"github.com/ember-protocol/ember-go/pkg/glow"
)

// ErrInvalidFixture reports a YAML tree that cannot be built.
var ErrInvalidFixture = errors.New("invalid tree fixture")

// FixtureError locates a problem in a tree fixture.
type FixtureError struct {
	File    string
	Path    string
	Message string
	Cause   error
}

func (e *FixtureError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *FixtureError) Unwrap() []error {
	return []error{ErrInvalidFixture, e.Cause}
}

type treeFixture struct {
	Elements []elementFixture `yaml:"elements"`
}

type elementFixture struct {
	Kind        string `yaml:"kind"`
	Number      *int32 `yaml:"number"`
	Identifier  string `yaml:"identifier"`
	Description string `yaml:"description"`
	Online      *bool  `yaml:"online"`
	IsRoot      *bool  `yaml:"isRoot"`
	Schema      string `yaml:"schemaIdentifiers"`

	Value            any            `yaml:"value"`
	Minimum          any            `yaml:"minimum"`
	Maximum          any            `yaml:"maximum"`
	Default          any            `yaml:"default"`
	Type             string         `yaml:"type"`
	Access           string         `yaml:"access"`
	Format           string         `yaml:"format"`
	Enumeration      string         `yaml:"enumeration"`
	EnumMap          []enumFixture  `yaml:"enumMap"`
	Factor           *int64         `yaml:"factor"`
	Step             *int64         `yaml:"step"`
	Formula          string         `yaml:"formula"`
	StreamIdentifier *int64         `yaml:"streamIdentifier"`
	Stream           *streamFixture `yaml:"stream"`

	Children []elementFixture `yaml:"children"`
}

type enumFixture struct {
	Key   string `yaml:"key"`
	Value int64  `yaml:"value"`
}

type streamFixture struct {
	Format *int   `yaml:"format"`
	Offset *int64 `yaml:"offset"`
}

// ParseTree builds a tree from a YAML fixture:
//
//	elements:
//	  - kind: node
//	    number: 1
//	    identifier: io
//	    children:
//	      - kind: parameter
//	        number: 2
//	        identifier: gain
//	        type: integer
//	        value: -6
//
// Every element listed gets known children, so a provider serving the tree
// answers leaves with empty directories.
func ParseTree(data []byte) (*glow.Root, error) {
	var f treeFixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &FixtureError{Message: "failed to parse YAML", Cause: err}
	}
	root := glow.NewRoot()
	glow.MarkChildrenKnown(root)
	if err := buildChildren(root, f.Elements, ""); err != nil {
		return nil, err
	}
	return root, nil
}

// LoadTree reads and parses a YAML fixture file.
func LoadTree(path string) (*glow.Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FixtureError{File: path, Message: "failed to read file", Cause: err}
	}
	root, err := ParseTree(data)
	if err != nil {
		var fe *FixtureError
		if errors.As(err, &fe) {
			fe.File = path
		}
		return nil, err
	}
	return root, nil
}

func buildChildren(parent glow.TreeNode, specs []elementFixture, prefix string) error {
	seen := make(map[int32]bool, len(specs))
	for i := range specs {
		s := &specs[i]
		if s.Number == nil {
			return &FixtureError{Path: fmt.Sprintf("%s[%d]", prefix, i), Message: "number is required"}
		}
		path := fmt.Sprintf("%s%d", prefix, *s.Number)
		if seen[*s.Number] {
			return &FixtureError{Path: path, Message: "duplicate number"}
		}
		seen[*s.Number] = true

		var el glow.TreeNode
		switch s.Kind {
		case "node", "":
			el = buildNode(s)
		case "parameter":
			p, err := buildParameter(s, path)
			if err != nil {
				return err
			}
			el = p
		default:
			return &FixtureError{Path: path, Message: fmt.Sprintf("unknown kind %q", s.Kind)}
		}
		parent.AddChild(el.(glow.Element))
		glow.MarkChildrenKnown(el)
		if err := buildChildren(el, s.Children, path+"."); err != nil {
			return err
		}
	}
	return nil
}

func buildNode(s *elementFixture) *glow.Node {
	n := glow.NewNode(*s.Number)
	n.Contents = &glow.NodeContents{
		Identifier:        optString(s.Identifier),
		Description:       optString(s.Description),
		IsOnline:          s.Online,
		IsRoot:            s.IsRoot,
		SchemaIdentifiers: optString(s.Schema),
	}
	return n
}

func buildParameter(s *elementFixture, path string) (*glow.Parameter, error) {
	c := &glow.ParameterContents{
		Identifier:        optString(s.Identifier),
		Description:       optString(s.Description),
		IsOnline:          s.Online,
		Format:            optString(s.Format),
		Enumeration:       optString(s.Enumeration),
		Factor:            s.Factor,
		Step:              s.Step,
		Formula:           optString(s.Formula),
		StreamIdentifier:  s.StreamIdentifier,
		SchemaIdentifiers: optString(s.Schema),
	}
	fail := func(msg string, cause error) error {
		return &FixtureError{Path: path, Message: msg, Cause: cause}
	}

	if s.Type != "" {
		t, ok := glow.ParseParameterType(s.Type)
		if !ok {
			return nil, fail(fmt.Sprintf("unknown type %q", s.Type), nil)
		}
		c.Type = &t
	}
	if s.Access != "" {
		a, ok := glow.ParseParameterAccess(s.Access)
		if !ok {
			return nil, fail(fmt.Sprintf("unknown access %q", s.Access), nil)
		}
		c.Access = &a
	}

	var err error
	if c.Value, err = toValue(s.Value, c.Type); err != nil {
		return nil, fail("bad value", err)
	}
	if c.Minimum, err = toValue(s.Minimum, c.Type); err != nil {
		return nil, fail("bad minimum", err)
	}
	if c.Maximum, err = toValue(s.Maximum, c.Type); err != nil {
		return nil, fail("bad maximum", err)
	}
	if c.Default, err = toValue(s.Default, c.Type); err != nil {
		return nil, fail("bad default", err)
	}

	if s.EnumMap != nil {
		c.EnumMap = make(glow.StringIntegerCollection, len(s.EnumMap))
		for i, e := range s.EnumMap {
			c.EnumMap[i] = glow.StringIntegerPair{Key: e.Key, Value: e.Value}
		}
	}
	if s.Stream != nil {
		sd := &glow.StreamDescription{Offset: s.Stream.Offset}
		if s.Stream.Format != nil {
			f := glow.StreamFormat(*s.Stream.Format)
			sd.Format = &f
		}
		c.StreamDescriptor = sd
	}

	p := glow.NewParameter(*s.Number)
	p.Contents = c
	return p, nil
}

// toValue converts a YAML scalar, guided by the declared parameter type.
func toValue(v any, typ *glow.ParameterType) (ber.Value, error) {
	if v == nil {
		return nil, nil
	}
	if typ != nil {
		switch *typ {
		case glow.TypeReal:
			switch n := v.(type) {
			case int:
				return ber.Real(float64(n)), nil
			case int64:
				return ber.Real(float64(n)), nil
			case float64:
				return ber.Real(n), nil
			}
		case glow.TypeOctets:
			if s, ok := v.(string); ok {
				return ber.Octets(s), nil
			}
		}
	}
	switch x := v.(type) {
	case int:
		return ber.Integer(x), nil
	case int64:
		return ber.Integer(x), nil
	case float64:
		return ber.Real(x), nil
	case bool:
		return ber.Boolean(x), nil
	case string:
		return ber.String(x), nil
	}
	return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
