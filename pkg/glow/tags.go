package glow

import "github.com/ember-protocol/ember-go/pkg/ber"

const app = ber.ClassApplication | ber.Constructed

// Application tags of the Glow DTD.
const (
	tagRoot                    = app | 0
	tagParameter               = app | 1
	tagCommand                 = app | 2
	tagNode                    = app | 3
	tagElementCollection       = app | 4
	tagStreamCollection        = app | 6
	tagStringIntegerPair       = app | 7
	tagStringIntegerCollection = app | 8
	tagQualifiedParameter      = app | 9
	tagQualifiedNode           = app | 10
	tagRootElementCollection   = app | 11
	tagStreamDescription       = app | 12
	tagMatrix                  = app | 13
	tagQualifiedMatrix         = app | 17
	tagFunction                = app | 19
	tagQualifiedFunction       = app | 20
	tagInvocationResult        = app | 23
	tagTemplate                = app | 24
	tagQualifiedTemplate       = app | 25
)

// CommandGetDirectory is the command number requesting the contents and
// children of the addressed element.
const CommandGetDirectory int32 = 32

func ctx(n uint8) ber.Tag { return ber.Context(n) }
