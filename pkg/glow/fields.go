package glow

import "github.com/ember-protocol/ember-go/pkg/ber"

// writeField wraps *v in context tag n; nil pointers are omitted.
func writeField[T any](w *ber.Writer, n uint8, v *T, write func(*ber.Writer, T)) {
	if v == nil {
		return
	}
	w.Sequence(ctx(n), func(w *ber.Writer) { write(w, *v) })
}

func writeValue(w *ber.Writer, n uint8, v ber.Value) {
	if v == nil {
		return
	}
	w.Sequence(ctx(n), func(w *ber.Writer) { w.WriteValue(v) })
}

func writeString(w *ber.Writer, v string) { w.WriteString(v) }
func writeBool(w *ber.Writer, v bool)     { w.WriteBool(v) }
func writeInt(w *ber.Writer, v int64)     { w.WriteInt(v) }

func readString(r *ber.Reader) (*string, error) {
	v, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func readBool(r *ber.Reader) (*bool, error) {
	v, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func readInt(r *ber.Reader) (*int64, error) {
	v, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Ptr returns a pointer to v, for filling optional contents fields.
func Ptr[T any](v T) *T {
	return &v
}
