package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-protocol/ember-go/pkg/glow"
)

func TestShallowCopy(t *testing.T) {
	tree := loadMixer(t)
	io := tree.Children()[0].(*glow.Node)
	mode := glow.GetElement(io, glow.NumberSegment(4)).(*glow.Parameter)

	t.Run("node", func(t *testing.T) {
		cp, ok := shallowCopy(io).(*glow.Node)
		require.True(t, ok)
		assert.Equal(t, io.Number(), cp.Number())
		assert.Nil(t, cp.Parent())
		assert.False(t, cp.ChildrenKnown())
		assert.NotSame(t, io.Contents, cp.Contents)
		assert.Equal(t, "io", cp.Identifier())
	})

	t.Run("parameter", func(t *testing.T) {
		cp, ok := shallowCopy(mode).(*glow.Parameter)
		require.True(t, ok)
		require.NotEmpty(t, cp.Contents.EnumMap)
		cp.Contents.EnumMap[0].Key = "changed"
		assert.NotEqual(t, "changed", mode.Contents.EnumMap[0].Key)
	})

	t.Run("attachable", func(t *testing.T) {
		reply := glow.NewRoot()
		reply.AddChild(shallowCopy(io))
		assert.Same(t, reply, reply.Children()[0].Parent())
	})
}
