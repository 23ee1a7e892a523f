package glow

import (
	"testing"

	"github.com/ember-protocol/ember-go/pkg/ber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, r *Root) *Root {
	t.Helper()
	data, err := Encode(r)
	require.NoError(t, err)
	out, err := Decode(data)
	require.NoError(t, err)

	again, err := Encode(out)
	require.NoError(t, err)
	assert.Equal(t, data, again, "re-encoding changed the bytes")
	return out
}

func fullParameterContents() *ParameterContents {
	return &ParameterContents{
		Identifier:       Ptr("gain"),
		Description:      Ptr("Input gain"),
		Value:            ber.Real(-6.5),
		Minimum:          ber.Real(-64),
		Maximum:          ber.Real(12),
		Access:           Ptr(AccessReadWrite),
		Format:           Ptr("%.1f dB"),
		Enumeration:      Ptr("off\non"),
		Factor:           Ptr(int64(10)),
		IsOnline:         Ptr(true),
		Formula:          Ptr("$/10\n$*10"),
		Step:             Ptr(int64(2)),
		Default:          ber.Real(0),
		Type:             Ptr(TypeReal),
		StreamIdentifier: Ptr(int64(7)),
		EnumMap: StringIntegerCollection{
			{Key: "off", Value: 0},
			{Key: "on", Value: 1},
			{Key: "auto", Value: -1},
		},
		StreamDescriptor: &StreamDescription{
			Format: Ptr(StreamFloat32LittleEndian),
			Offset: Ptr(int64(4)),
		},
		SchemaIdentifiers: Ptr("de.l-s-b.emberplus.gain"),
	}
}

func TestCommandRoundTrip(t *testing.T) {
	r := NewRoot()
	r.AddChild(NewCommand(CommandGetDirectory))

	out := roundTrip(t, r)
	require.Len(t, out.Children(), 1)
	cmd, ok := out.Children()[0].(*Command)
	require.True(t, ok)
	assert.Equal(t, CommandGetDirectory, cmd.Number())
	assert.Same(t, out, cmd.Parent())
}

func TestNodeRoundTrip(t *testing.T) {
	r := NewRoot()
	n := NewNode(1)
	n.Contents = &NodeContents{
		Identifier:        Ptr("io"),
		Description:       Ptr("Inputs and outputs"),
		IsRoot:            Ptr(false),
		IsOnline:          Ptr(false),
		SchemaIdentifiers: Ptr("io.schema"),
	}
	r.AddChild(n)
	child := NewNode(5)
	n.AddChild(child)

	out := roundTrip(t, r)
	got := out.Children()[0].(*Node)
	assert.Equal(t, int32(1), got.Number())
	assert.Equal(t, n.Contents, got.Contents)
	assert.False(t, got.Contents.Online())
	require.Len(t, got.Children(), 1)

	gotChild := got.Children()[0].(*Node)
	assert.Equal(t, int32(5), gotChild.Number())
	assert.Nil(t, gotChild.Contents)
	assert.False(t, gotChild.ChildrenKnown())
	assert.Same(t, got, gotChild.Parent())
}

func TestParameterRoundTripAllFields(t *testing.T) {
	r := NewRoot()
	p := NewParameter(2)
	p.Contents = fullParameterContents()
	r.AddChild(p)

	out := roundTrip(t, r)
	got := out.Children()[0].(*Parameter)
	assert.Equal(t, p.Contents, got.Contents)
	assert.Equal(t, "gain", got.Identifier())
	assert.Equal(t, ber.Real(-6.5), got.Value())
}

func TestParameterValueKinds(t *testing.T) {
	values := []ber.Value{
		ber.Integer(-3),
		ber.Real(0.25),
		ber.String("label"),
		ber.Boolean(true),
		ber.Octets{1, 2, 3},
		ber.Null{},
	}
	for _, v := range values {
		r := NewRoot()
		p := NewParameter(1)
		p.Contents = &ParameterContents{Identifier: Ptr("v"), Value: v}
		r.AddChild(p)

		got := roundTrip(t, r).Children()[0].(*Parameter)
		assert.Equal(t, v, got.Value())
	}
}

func TestAbsentFieldsStayAbsent(t *testing.T) {
	r := NewRoot()
	p := NewParameter(3)
	p.Contents = &ParameterContents{Value: ber.Integer(0)}
	r.AddChild(p)
	n := NewNode(4)
	n.Contents = &NodeContents{}
	r.AddChild(n)

	out := roundTrip(t, r)
	gotP := out.Children()[0].(*Parameter)
	assert.Equal(t, &ParameterContents{Value: ber.Integer(0)}, gotP.Contents)
	assert.Nil(t, gotP.Contents.EnumMap)

	gotN := out.Children()[1].(*Node)
	assert.Equal(t, &NodeContents{}, gotN.Contents)
	assert.Nil(t, gotN.Contents.IsOnline)
	assert.True(t, gotN.Contents.Online(), "isOnline defaults to true")
}

func TestEmptyEnumMapIsPresent(t *testing.T) {
	r := NewRoot()
	p := NewParameter(1)
	p.Contents = &ParameterContents{EnumMap: StringIntegerCollection{}}
	r.AddChild(p)

	got := roundTrip(t, r).Children()[0].(*Parameter)
	assert.NotNil(t, got.Contents.EnumMap)
	assert.Empty(t, got.Contents.EnumMap)
}

func TestRootEnvelopes(t *testing.T) {
	t.Run("no children", func(t *testing.T) {
		data, err := Encode(NewRoot())
		require.NoError(t, err)
		assert.Equal(t, []byte{0x60, 0x00}, data)

		out, err := Decode(data)
		require.NoError(t, err)
		assert.False(t, out.ChildrenKnown())
	})

	t.Run("known empty", func(t *testing.T) {
		r := NewRoot()
		r.markChildrenKnown()
		out := roundTrip(t, r)
		assert.True(t, out.ChildrenKnown())
		assert.Empty(t, out.Children())
	})

	t.Run("node with known empty children", func(t *testing.T) {
		r := NewRoot()
		n := NewNode(1)
		n.markChildrenKnown()
		r.AddChild(n)
		got := roundTrip(t, r).Children()[0].(*Node)
		assert.True(t, got.ChildrenKnown())
		assert.Empty(t, got.Children())
	})
}

func TestEncodingDoesNotTouchParent(t *testing.T) {
	root, io, gain := testTree()
	before := gain.Parent()

	r := NewRoot()
	r.AddChild(NewParameter(gain.Number()))
	_, err := Encode(r)
	require.NoError(t, err)

	// encoding io on its own leaves the cached back pointers alone
	w := ber.NewWriter()
	io.encode(w)
	_, err = w.Bytes()
	require.NoError(t, err)

	assert.Same(t, before, gain.Parent())
	assert.Same(t, root, io.Parent())
}

func TestDecodeSeveralElementsInOneWrapper(t *testing.T) {
	w := ber.NewWriter()
	w.Sequence(tagRoot, func(w *ber.Writer) {
		w.Sequence(tagRootElementCollection, func(w *ber.Writer) {
			w.Sequence(ctx(0), func(w *ber.Writer) {
				NewNode(1).encode(w)
				NewNode(2).encode(w)
			})
		})
	})
	data, err := w.Bytes()
	require.NoError(t, err)

	r, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, r.Children(), 2)
	assert.Equal(t, int32(2), r.Children()[1].Number())
}

func encodeRootWith(t *testing.T, body func(w *ber.Writer)) []byte {
	t.Helper()
	w := ber.NewWriter()
	w.Sequence(tagRoot, func(w *ber.Writer) {
		w.Sequence(tagRootElementCollection, func(w *ber.Writer) {
			w.Sequence(ctx(0), body)
		})
	})
	data, err := w.Bytes()
	require.NoError(t, err)
	return data
}

func TestUnsupportedElements(t *testing.T) {
	tags := []ber.Tag{tagMatrix, tagFunction, tagTemplate, tagQualifiedNode, tagQualifiedParameter, ber.Application(30)}
	for _, tag := range tags {
		t.Run(tag.String(), func(t *testing.T) {
			data := encodeRootWith(t, func(w *ber.Writer) {
				w.Sequence(tag, func(w *ber.Writer) {
					w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteInt(1) })
				})
			})
			_, err := Decode(data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedElement)

			var ue *UnsupportedElementError
			require.ErrorAs(t, err, &ue)
			assert.Equal(t, tag, ue.Tag)
		})
	}
}

func TestUnsupportedRootKinds(t *testing.T) {
	for _, tag := range []ber.Tag{tagStreamCollection, tagInvocationResult} {
		w := ber.NewWriter()
		w.Sequence(tagRoot, func(w *ber.Writer) {
			w.Sequence(tag, func(*ber.Writer) {})
		})
		data, err := w.Bytes()
		require.NoError(t, err)

		_, err = Decode(data)
		assert.ErrorIs(t, err, ErrUnsupportedElement)
	}
}

func TestCommandRejectsOptions(t *testing.T) {
	data := encodeRootWith(t, func(w *ber.Writer) {
		w.Sequence(tagCommand, func(w *ber.Writer) {
			w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteInt(32) })
			w.Sequence(ctx(1), func(w *ber.Writer) { w.WriteInt(0) })
		})
	})
	_, err := Decode(data)
	assert.ErrorIs(t, err, ErrUnsupportedElement)
}

func TestUnknownContentsFieldRejected(t *testing.T) {
	data := encodeRootWith(t, func(w *ber.Writer) {
		w.Sequence(tagNode, func(w *ber.Writer) {
			w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteInt(1) })
			w.Sequence(ctx(1), func(w *ber.Writer) {
				w.Sequence(ber.TagSet, func(w *ber.Writer) {
					w.Sequence(ctx(9), func(w *ber.Writer) { w.WriteBool(true) })
				})
			})
		})
	})
	_, err := Decode(data)
	assert.ErrorIs(t, err, ErrUnsupportedElement)
}

func TestMalformedInput(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		data, err := Encode(mustTree())
		require.NoError(t, err)
		_, err = Decode(data[:len(data)-3])
		assert.ErrorIs(t, err, ber.ErrMalformed)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		_, err := Decode([]byte{0x60, 0x00, 0x00})
		assert.ErrorIs(t, err, ber.ErrMalformed)
	})

	t.Run("node without number", func(t *testing.T) {
		data := encodeRootWith(t, func(w *ber.Writer) {
			w.Sequence(tagNode, func(*ber.Writer) {})
		})
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrMissingNumber)
	})

	t.Run("wrong primitive", func(t *testing.T) {
		data := encodeRootWith(t, func(w *ber.Writer) {
			w.Sequence(tagNode, func(w *ber.Writer) {
				w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteString("one") })
			})
		})
		_, err := Decode(data)
		assert.ErrorIs(t, err, ber.ErrMalformed)
	})

	t.Run("extra value in command number", func(t *testing.T) {
		data := []byte{0x60, 0x0e, 0x6b, 0x0c, 0xa0, 0x0a, 0x62, 0x08, 0xa0, 0x06, 0x02, 0x01, 0x20, 0x02, 0x01, 0x05}
		_, err := Decode(data)
		assert.ErrorIs(t, err, ber.ErrMalformed)
	})

	extra := func(w *ber.Writer) { w.WriteInt(5) }
	for name, body := range map[string]func(w *ber.Writer){
		"extra value in node number": func(w *ber.Writer) {
			w.Sequence(tagNode, func(w *ber.Writer) {
				w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteInt(1); extra(w) })
			})
		},
		"extra value in identifier": func(w *ber.Writer) {
			w.Sequence(tagNode, func(w *ber.Writer) {
				w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteInt(1) })
				w.Sequence(ctx(1), func(w *ber.Writer) {
					w.Sequence(ber.TagSet, func(w *ber.Writer) {
						w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteString("a"); extra(w) })
					})
				})
			})
		},
		"extra value in parameter value": func(w *ber.Writer) {
			w.Sequence(tagParameter, func(w *ber.Writer) {
				w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteInt(1) })
				w.Sequence(ctx(1), func(w *ber.Writer) {
					w.Sequence(ber.TagSet, func(w *ber.Writer) {
						w.Sequence(ctx(2), func(w *ber.Writer) { w.WriteInt(7); extra(w) })
					})
				})
			})
		},
		"extra data after contents set": func(w *ber.Writer) {
			w.Sequence(tagNode, func(w *ber.Writer) {
				w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteInt(1) })
				w.Sequence(ctx(1), func(w *ber.Writer) {
					w.Sequence(ber.TagSet, func(*ber.Writer) {})
					extra(w)
				})
			})
		},
		"extra data after children": func(w *ber.Writer) {
			w.Sequence(tagNode, func(w *ber.Writer) {
				w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteInt(1) })
				w.Sequence(ctx(2), func(w *ber.Writer) {
					w.Sequence(tagElementCollection, func(*ber.Writer) {})
					extra(w)
				})
			})
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(encodeRootWith(t, body))
			assert.ErrorIs(t, err, ber.ErrMalformed)
		})
	}
}

func TestParameterWithoutIdentifierDecodes(t *testing.T) {
	data := encodeRootWith(t, func(w *ber.Writer) {
		w.Sequence(tagParameter, func(w *ber.Writer) {
			w.Sequence(ctx(0), func(w *ber.Writer) { w.WriteInt(4) })
			w.Sequence(ctx(1), func(w *ber.Writer) {
				w.Sequence(ber.TagSet, func(w *ber.Writer) {
					w.Sequence(ctx(2), func(w *ber.Writer) { w.WriteInt(-12) })
				})
			})
		})
	})
	r, err := Decode(data)
	require.NoError(t, err)

	p := r.Children()[0].(*Parameter)
	require.NotNil(t, p.Contents)
	assert.Nil(t, p.Contents.Identifier)
	assert.Equal(t, "", p.Identifier())
	assert.Equal(t, ber.Integer(-12), p.Contents.Value)
}

func mustTree() *Root {
	r, _, _ := testTree()
	return r
}

// testTree builds Root > Node 1 "io" > Parameter 2 "gain".
func testTree() (*Root, *Node, *Parameter) {
	root := NewRoot()
	io := NewNode(1)
	io.Contents = &NodeContents{Identifier: Ptr("io")}
	gain := NewParameter(2)
	gain.Contents = &ParameterContents{Identifier: Ptr("gain"), Value: ber.Integer(-6)}
	root.AddChild(io)
	io.AddChild(gain)
	return root, io, gain
}
