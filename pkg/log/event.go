package log

import "time"

// MaxCapturedData bounds the message bytes stored in a MessageEvent.
const MaxCapturedData = 4096

// Event is one captured protocol event. CBOR encoding uses integer keys.
type Event struct {
	Timestamp    time.Time `cbor:"1,keyasint"`
	ConnectionID string    `cbor:"2,keyasint"`
	Direction    Direction `cbor:"3,keyasint"`
	Layer        Layer     `cbor:"4,keyasint"`
	Category     Category  `cbor:"5,keyasint"`
	LocalRole    Role      `cbor:"6,keyasint,omitempty"`

	// Peer names the remote side when the transport knows it.
	Peer string `cbor:"7,keyasint,omitempty"`

	// Exactly one of these is set.
	Message *MessageEvent   `cbor:"10,keyasint,omitempty"`
	Merge   *MergeEvent     `cbor:"11,keyasint,omitempty"`
	Error   *ErrorEventData `cbor:"12,keyasint,omitempty"`
}

// Direction of a message relative to the local endpoint.
type Direction uint8

const (
	DirectionIn  Direction = 0
	DirectionOut Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer is where an event was captured.
type Layer uint8

const (
	// LayerCodec sees encoded Glow messages.
	LayerCodec Layer = 0
	// LayerTree sees merges into the cached tree.
	LayerTree Layer = 1
)

func (l Layer) String() string {
	switch l {
	case LayerCodec:
		return "CODEC"
	case LayerTree:
		return "TREE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies events.
type Category uint8

const (
	CategoryMessage Category = 0
	CategoryMerge   Category = 1
	CategoryError   Category = 2
)

func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryMerge:
		return "MERGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Role of the local endpoint.
type Role uint8

const (
	RoleConsumer Role = 0
	RoleProvider Role = 1
)

func (r Role) String() string {
	switch r {
	case RoleConsumer:
		return "CONSUMER"
	case RoleProvider:
		return "PROVIDER"
	default:
		return "UNKNOWN"
	}
}

// MessageEvent describes one encoded Glow message.
type MessageEvent struct {
	Type MessageType `cbor:"1,keyasint"`

	// Size of the encoded message in bytes.
	Size int `cbor:"2,keyasint"`

	// Elements is the number of top-level elements in the root collection.
	Elements int `cbor:"3,keyasint"`

	// Path holds the element numbers leading to the deepest element of a
	// single-branch message.
	Path []int32 `cbor:"4,keyasint,omitempty"`

	// Command is the command number carried at the end of Path, if any.
	Command *int32 `cbor:"5,keyasint,omitempty"`

	// Data is the encoded message, cut to MaxCapturedData bytes.
	Data      []byte `cbor:"6,keyasint,omitempty"`
	Truncated bool   `cbor:"7,keyasint,omitempty"`
}

// SetData stores data, truncating it to MaxCapturedData bytes.
func (m *MessageEvent) SetData(data []byte) {
	m.Size = len(data)
	if len(data) > MaxCapturedData {
		data = data[:MaxCapturedData]
		m.Truncated = true
	}
	m.Data = append([]byte(nil), data...)
}

// MessageType distinguishes requests from responses and unsolicited
// updates.
type MessageType uint8

const (
	MessageTypeRequest      MessageType = 0
	MessageTypeResponse     MessageType = 1
	MessageTypeNotification MessageType = 2
)

func (m MessageType) String() string {
	switch m {
	case MessageTypeRequest:
		return "REQUEST"
	case MessageTypeResponse:
		return "RESPONSE"
	case MessageTypeNotification:
		return "NOTIFICATION"
	default:
		return "UNKNOWN"
	}
}

// MergeEvent describes one merge into the cached tree.
type MergeEvent struct {
	// Elements is the number of top-level elements merged.
	Elements int `cbor:"1,keyasint"`

	// Callbacks is the number of callbacks scheduled by the merge.
	Callbacks int `cbor:"2,keyasint"`

	Duration time.Duration `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData describes a failure.
type ErrorEventData struct {
	Layer   Layer  `cbor:"1,keyasint"`
	Message string `cbor:"2,keyasint"`

	// Context names the operation that failed.
	Context string `cbor:"3,keyasint,omitempty"`
}
