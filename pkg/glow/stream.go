package glow

import "github.com/ember-protocol/ember-go/pkg/ber"

// StreamDescription locates a parameter value inside a stream packet.
type StreamDescription struct {
	Format *StreamFormat
	Offset *int64
}

func decodeStreamDescription(r *ber.Reader) (*StreamDescription, error) {
	seq, err := r.GetSequence(tagStreamDescription)
	if err != nil {
		return nil, err
	}
	sd := &StreamDescription{}
	for !seq.Empty() {
		tag, field, err := seq.ReadSequence()
		if err != nil {
			return nil, err
		}
		switch tag {
		case ctx(0):
			v, err := field.ReadInt()
			if err != nil {
				return nil, err
			}
			sd.Format = Ptr(StreamFormat(v))
		case ctx(1):
			if sd.Offset, err = readInt(field); err != nil {
				return nil, err
			}
		default:
			return nil, unsupported(tag)
		}
		if err := field.End(); err != nil {
			return nil, err
		}
	}
	return sd, nil
}

func (sd *StreamDescription) encode(w *ber.Writer) {
	w.Sequence(tagStreamDescription, func(w *ber.Writer) {
		writeField(w, 0, sd.Format, func(w *ber.Writer, f StreamFormat) { w.WriteInt(int64(f)) })
		writeField(w, 1, sd.Offset, writeInt)
	})
}
