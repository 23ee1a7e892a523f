package ber

import "fmt"

// Tag is a single-octet BER identifier: class, constructed bit and number.
type Tag uint8

// Tag classes and the constructed flag.
const (
	ClassUniversal   Tag = 0x00
	ClassApplication Tag = 0x40
	ClassContext     Tag = 0x80
	ClassPrivate     Tag = 0xC0

	Constructed Tag = 0x20

	classMask  Tag = 0xC0
	numberMask Tag = 0x1F
)

// Universal tags used by Ember+.
const (
	TagBoolean     Tag = 1
	TagInteger     Tag = 2
	TagOctetString Tag = 4
	TagNull        Tag = 5
	TagReal        Tag = 9
	TagUTF8String  Tag = 12
	TagSequence    Tag = 16 | Constructed
	TagSet         Tag = 17 | Constructed
)

// Application returns the constructed application tag with number n.
func Application(n uint8) Tag {
	return ClassApplication | Constructed | Tag(n)&numberMask
}

// Context returns the constructed context-specific tag with number n.
func Context(n uint8) Tag {
	return ClassContext | Constructed | Tag(n)&numberMask
}

// Class returns the tag class bits.
func (t Tag) Class() Tag { return t & classMask }

// Number returns the tag number within its class.
func (t Tag) Number() uint8 { return uint8(t & numberMask) }

// IsConstructed reports whether the constructed bit is set.
func (t Tag) IsConstructed() bool { return t&Constructed != 0 }

// String returns the tag in the conventional CLASS(n) notation.
func (t Tag) String() string {
	switch t.Class() {
	case ClassApplication:
		return fmt.Sprintf("APPLICATION(%d)", t.Number())
	case ClassContext:
		return fmt.Sprintf("CONTEXT(%d)", t.Number())
	case ClassPrivate:
		return fmt.Sprintf("PRIVATE(%d)", t.Number())
	default:
		return fmt.Sprintf("UNIVERSAL(%d)", t.Number())
	}
}
