package provider

import (
	"slices"

	"github.com/ember-protocol/ember-go/pkg/glow"
)

// shallowCopy returns a detached copy of el with its contents and unknown
// children.
func shallowCopy(el glow.Element) glow.Element {
	switch e := el.(type) {
	case *glow.Node:
		n := glow.NewNode(e.Number())
		if e.Contents != nil {
			c := *e.Contents
			n.Contents = &c
		}
		return n
	case *glow.Parameter:
		p := glow.NewParameter(e.Number())
		p.Contents = copyParameterContents(e.Contents)
		return p
	}
	return nil
}

func copyParameterContents(c *glow.ParameterContents) *glow.ParameterContents {
	if c == nil {
		return nil
	}
	cp := *c
	cp.EnumMap = slices.Clone(c.EnumMap)
	return &cp
}
