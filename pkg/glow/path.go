package glow

import (
	"fmt"
	"strconv"
	"strings"
)

// PathSegment selects a child either by number or by contents identifier.
type PathSegment struct {
	number     int32
	identifier string
	byNumber   bool
}

// NumberSegment selects the child with the given number.
func NumberSegment(n int32) PathSegment {
	return PathSegment{number: n, byNumber: true}
}

// IdentifierSegment selects the child whose contents identifier is id.
func IdentifierSegment(id string) PathSegment {
	return PathSegment{identifier: id}
}

// IsNumber reports whether the segment selects by number.
func (s PathSegment) IsNumber() bool { return s.byNumber }

func (s PathSegment) String() string {
	if s.byNumber {
		return strconv.FormatInt(int64(s.number), 10)
	}
	return s.identifier
}

// Path is a sequence of segments starting below the Root.
type Path []PathSegment

// ParsePath splits an identifier path such as "io/gain". Empty segments are
// ignored.
func ParsePath(s string) Path {
	var p Path
	for _, part := range strings.Split(s, "/") {
		if part != "" {
			p = append(p, IdentifierSegment(part))
		}
	}
	return p
}

// ParseNumericPath parses a dotted number path such as "1.2.3".
func ParseNumericPath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid path segment %q: %w", part, err)
		}
		p = append(p, NumberSegment(int32(n)))
	}
	return p, nil
}

// NumberPath returns the numeric path of numbers.
func NumberPath(numbers []int32) Path {
	p := make(Path, len(numbers))
	for i, n := range numbers {
		p[i] = NumberSegment(n)
	}
	return p
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, "/")
}

// GetElement returns the child of node selected by seg, or nil. Children
// whose contents are unknown never match an identifier.
func GetElement(node TreeNode, seg PathSegment) Element {
	if seg.byNumber {
		el, _ := node.base().child(seg.number)
		return el
	}
	for _, c := range node.Children() {
		if identifierOf(c) == seg.identifier && hasIdentifier(c) {
			return c
		}
	}
	return nil
}

// NumbersOf returns the numbers from the Root down to el.
func NumbersOf(el Element) []int32 {
	var rev []int32
	var cur Element = el
	for cur != nil {
		rev = append(rev, cur.Number())
		p, ok := cur.Parent().(Element)
		if !ok {
			break
		}
		cur = p
	}
	out := make([]int32, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return out
}

func identifierOf(el Element) string {
	switch e := el.(type) {
	case *Node:
		return e.Identifier()
	case *Parameter:
		return e.Identifier()
	}
	return ""
}

func hasIdentifier(el Element) bool {
	switch e := el.(type) {
	case *Node:
		return e.Contents != nil && e.Contents.Identifier != nil
	case *Parameter:
		return e.Contents != nil && e.Contents.Identifier != nil
	}
	return false
}
