package ber

// Value is the typed value union carried by parameter value, minimum,
// maximum and default fields. The set of implementations is closed:
// Integer, Real, String, Boolean, Octets and Null.
//
// A nil Value means the field is absent.
type Value interface {
	isValue()
}

// Integer is an INTEGER value.
type Integer int64

// Real is a REAL value.
type Real float64

// String is a UTF8String value.
type String string

// Boolean is a BOOLEAN value.
type Boolean bool

// Octets is an OCTET STRING value.
type Octets []byte

// Null is the NULL value.
type Null struct{}

func (Integer) isValue() {}
func (Real) isValue()    {}
func (String) isValue()  {}
func (Boolean) isValue() {}
func (Octets) isValue()  {}
func (Null) isValue()    {}
