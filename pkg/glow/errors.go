package glow

import (
	"errors"
	"fmt"

	"github.com/ember-protocol/ember-go/pkg/ber"
)

// Tree errors.
var (
	ErrUnsupportedElement = errors.New("unsupported element type")
	ErrPathNotFound       = errors.New("path not found")
	ErrMissingNumber      = errors.New("element without number")
)

// UnsupportedElementError reports a tag that is either unknown or names an
// element kind this package does not implement (matrix, function, template,
// qualified elements, stream collections, invocation results).
type UnsupportedElementError struct {
	Tag ber.Tag
}

func (e *UnsupportedElementError) Error() string {
	if name, ok := unsupportedNames[e.Tag]; ok {
		return fmt.Sprintf("%s: %s %s", ErrUnsupportedElement, name, e.Tag)
	}
	return fmt.Sprintf("%s: %s", ErrUnsupportedElement, e.Tag)
}

// Is makes errors.Is(err, ErrUnsupportedElement) match.
func (e *UnsupportedElementError) Is(target error) bool {
	return target == ErrUnsupportedElement
}

var unsupportedNames = map[ber.Tag]string{
	tagMatrix:             "matrix",
	tagFunction:           "function",
	tagTemplate:           "template",
	tagQualifiedParameter: "qualified parameter",
	tagQualifiedNode:      "qualified node",
	tagQualifiedMatrix:    "qualified matrix",
	tagQualifiedFunction:  "qualified function",
	tagQualifiedTemplate:  "qualified template",
	tagStreamCollection:   "stream collection",
	tagInvocationResult:   "invocation result",
}

func unsupported(tag ber.Tag) error {
	return &UnsupportedElementError{Tag: tag}
}
