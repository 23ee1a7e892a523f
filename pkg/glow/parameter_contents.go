package glow

import "github.com/ember-protocol/ember-go/pkg/ber"

// ParameterContents are the attributes of a Parameter. Nil pointers, nil
// values and a nil EnumMap are absent and stay absent through a round trip.
type ParameterContents struct {
	Identifier        *string                 // [0]
	Description       *string                 // [1]
	Value             ber.Value               // [2]
	Minimum           ber.Value               // [3]
	Maximum           ber.Value               // [4]
	Access            *ParameterAccess        // [5]
	Format            *string                 // [6]
	Enumeration       *string                 // [7]
	Factor            *int64                  // [8]
	IsOnline          *bool                   // [9]
	Formula           *string                 // [10]
	Step              *int64                  // [11]
	Default           ber.Value               // [12]
	Type              *ParameterType          // [13]
	StreamIdentifier  *int64                  // [14]
	EnumMap           StringIntegerCollection // [15]
	StreamDescriptor  *StreamDescription      // [16]
	SchemaIdentifiers *string                 // [17]
}

func decodeParameterContents(r *ber.Reader) (*ParameterContents, error) {
	set, err := r.GetSequence(ber.TagSet)
	if err != nil {
		return nil, err
	}
	c := &ParameterContents{}
	for !set.Empty() {
		tag, field, err := set.ReadSequence()
		if err != nil {
			return nil, err
		}
		switch tag {
		case ctx(0):
			c.Identifier, err = readString(field)
		case ctx(1):
			c.Description, err = readString(field)
		case ctx(2):
			c.Value, err = field.ReadValue()
		case ctx(3):
			c.Minimum, err = field.ReadValue()
		case ctx(4):
			c.Maximum, err = field.ReadValue()
		case ctx(5):
			var v int64
			if v, err = field.ReadInt(); err == nil {
				c.Access = Ptr(ParameterAccess(v))
			}
		case ctx(6):
			c.Format, err = readString(field)
		case ctx(7):
			c.Enumeration, err = readString(field)
		case ctx(8):
			c.Factor, err = readInt(field)
		case ctx(9):
			c.IsOnline, err = readBool(field)
		case ctx(10):
			c.Formula, err = readString(field)
		case ctx(11):
			c.Step, err = readInt(field)
		case ctx(12):
			c.Default, err = field.ReadValue()
		case ctx(13):
			var v int64
			if v, err = field.ReadInt(); err == nil {
				c.Type = Ptr(ParameterType(v))
			}
		case ctx(14):
			c.StreamIdentifier, err = readInt(field)
		case ctx(15):
			c.EnumMap, err = decodeStringIntegerCollection(field)
		case ctx(16):
			c.StreamDescriptor, err = decodeStreamDescription(field)
		case ctx(17):
			c.SchemaIdentifiers, err = readString(field)
		default:
			return nil, unsupported(tag)
		}
		if err == nil {
			err = field.End()
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *ParameterContents) encode(w *ber.Writer) {
	w.Sequence(ber.TagSet, func(w *ber.Writer) {
		writeField(w, 0, c.Identifier, writeString)
		writeField(w, 1, c.Description, writeString)
		writeValue(w, 2, c.Value)
		writeValue(w, 3, c.Minimum)
		writeValue(w, 4, c.Maximum)
		writeField(w, 5, c.Access, func(w *ber.Writer, a ParameterAccess) { w.WriteInt(int64(a)) })
		writeField(w, 6, c.Format, writeString)
		writeField(w, 7, c.Enumeration, writeString)
		writeField(w, 8, c.Factor, writeInt)
		writeField(w, 9, c.IsOnline, writeBool)
		writeField(w, 10, c.Formula, writeString)
		writeField(w, 11, c.Step, writeInt)
		writeValue(w, 12, c.Default)
		writeField(w, 13, c.Type, func(w *ber.Writer, t ParameterType) { w.WriteInt(int64(t)) })
		writeField(w, 14, c.StreamIdentifier, writeInt)
		if c.EnumMap != nil {
			w.Sequence(ctx(15), c.EnumMap.encode)
		}
		if c.StreamDescriptor != nil {
			w.Sequence(ctx(16), c.StreamDescriptor.encode)
		}
		writeField(w, 17, c.SchemaIdentifiers, writeString)
	})
}
