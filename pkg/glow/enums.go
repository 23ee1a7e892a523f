package glow

import "fmt"

// ParameterAccess states whether a parameter may be read and/or written.
type ParameterAccess int64

const (
	AccessNone      ParameterAccess = 0
	AccessRead      ParameterAccess = 1
	AccessWrite     ParameterAccess = 2
	AccessReadWrite ParameterAccess = 3
)

var accessNames = map[ParameterAccess]string{
	AccessNone:      "none",
	AccessRead:      "read",
	AccessWrite:     "write",
	AccessReadWrite: "readWrite",
}

// String returns the access name.
func (a ParameterAccess) String() string {
	if s, ok := accessNames[a]; ok {
		return s
	}
	return fmt.Sprintf("access(%d)", int64(a))
}

// ParseParameterAccess maps a name such as "readWrite" to its value.
func ParseParameterAccess(s string) (ParameterAccess, bool) {
	for a, name := range accessNames {
		if name == s {
			return a, true
		}
	}
	return 0, false
}

// ParameterType is the declared type of a parameter value.
type ParameterType int64

const (
	TypeInteger ParameterType = 1
	TypeReal    ParameterType = 2
	TypeString  ParameterType = 3
	TypeBoolean ParameterType = 4
	TypeTrigger ParameterType = 5
	TypeEnum    ParameterType = 6
	TypeOctets  ParameterType = 7
)

var typeNames = map[ParameterType]string{
	TypeInteger: "integer",
	TypeReal:    "real",
	TypeString:  "string",
	TypeBoolean: "boolean",
	TypeTrigger: "trigger",
	TypeEnum:    "enum",
	TypeOctets:  "octets",
}

// String returns the type name.
func (t ParameterType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("type(%d)", int64(t))
}

// ParseParameterType maps a name such as "integer" to its value.
func ParseParameterType(s string) (ParameterType, bool) {
	for t, name := range typeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// StreamFormat is the binary layout of a streamed parameter value.
type StreamFormat int64

const (
	StreamUnsignedInt8              StreamFormat = 0
	StreamUnsignedInt16BigEndian    StreamFormat = 2
	StreamUnsignedInt16LittleEndian StreamFormat = 3
	StreamUnsignedInt32BigEndian    StreamFormat = 4
	StreamUnsignedInt32LittleEndian StreamFormat = 5
	StreamUnsignedInt64BigEndian    StreamFormat = 6
	StreamUnsignedInt64LittleEndian StreamFormat = 7
	StreamSignedInt8                StreamFormat = 8
	StreamSignedInt16BigEndian      StreamFormat = 10
	StreamSignedInt16LittleEndian   StreamFormat = 11
	StreamSignedInt32BigEndian      StreamFormat = 12
	StreamSignedInt32LittleEndian   StreamFormat = 13
	StreamSignedInt64BigEndian      StreamFormat = 14
	StreamSignedInt64LittleEndian   StreamFormat = 15
	StreamFloat32BigEndian          StreamFormat = 20
	StreamFloat32LittleEndian       StreamFormat = 21
	StreamFloat64BigEndian          StreamFormat = 22
	StreamFloat64LittleEndian       StreamFormat = 23
)

var streamFormatNames = map[StreamFormat]string{
	StreamUnsignedInt8:              "unsignedInt8",
	StreamUnsignedInt16BigEndian:    "unsignedInt16BigEndian",
	StreamUnsignedInt16LittleEndian: "unsignedInt16LittleEndian",
	StreamUnsignedInt32BigEndian:    "unsignedInt32BigEndian",
	StreamUnsignedInt32LittleEndian: "unsignedInt32LittleEndian",
	StreamUnsignedInt64BigEndian:    "unsignedInt64BigEndian",
	StreamUnsignedInt64LittleEndian: "unsignedInt64LittleEndian",
	StreamSignedInt8:                "signedInt8",
	StreamSignedInt16BigEndian:      "signedInt16BigEndian",
	StreamSignedInt16LittleEndian:   "signedInt16LittleEndian",
	StreamSignedInt32BigEndian:      "signedInt32BigEndian",
	StreamSignedInt32LittleEndian:   "signedInt32LittleEndian",
	StreamSignedInt64BigEndian:      "signedInt64BigEndian",
	StreamSignedInt64LittleEndian:   "signedInt64LittleEndian",
	StreamFloat32BigEndian:          "ieeeFloat32BigEndian",
	StreamFloat32LittleEndian:       "ieeeFloat32LittleEndian",
	StreamFloat64BigEndian:          "ieeeFloat64BigEndian",
	StreamFloat64LittleEndian:       "ieeeFloat64LittleEndian",
}

// String returns the format name.
func (f StreamFormat) String() string {
	if s, ok := streamFormatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("streamFormat(%d)", int64(f))
}
