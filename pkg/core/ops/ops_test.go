// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"testing"

	"github.com/gomlx/fuser/pkg/core/fxgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	p := Packet("core.sum")
	assert.Equal(t, "core.sum", p.String())
	assert.Equal(t, "ops.core.sum", p.QualifiedName())

	o := MakeOverload(p, "dim")
	assert.Equal(t, "core.sum.dim", o.String())
	assert.Equal(t, "dim", o.Variant())
	assert.Equal(t, p, o.Packet())
	assert.Equal(t, "core.sum", MakeOverload(p, "").String())

	// Packets do not report themselves as overloads.
	var key Key = p
	_, overloaded := key.(Overloaded)
	assert.False(t, overloaded)
	key = o
	_, overloaded = key.(Overloaded)
	assert.True(t, overloaded)
}

func TestRegistry(t *testing.T) {
	identity := func(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node { return inputs[0] }
	r := NewRegistry()
	require.Panics(t, func() { r.Register(nil, MakeRef("somewhere", identity)) })
	require.Panics(t, func() { MakeRef("somewhere", nil) })

	r.Register(Packet("core.b"), MakeRef("pkg/b", identity))
	r.Register(MakeOverload("core.a", "dim"), MakeRef("pkg/a", identity))
	assert.Equal(t, 2, r.Len())

	// Iteration follows insertion order, not name order.
	var names []string
	for key, impl := range r.All() {
		names = append(names, key.String())
		assert.Implements(t, (*Origined)(nil), impl)
	}
	assert.Equal(t, []string{"core.b", "core.a.dim"}, names)

	// Re-registering a key replaces the implementation without a new entry.
	r.Register(Packet("core.b"), MakeRef("pkg/b2", identity))
	assert.Equal(t, 2, r.Len())
	impl, found := r.Get(Packet("core.b"))
	require.True(t, found)
	assert.Equal(t, "pkg/b2", impl.(Origined).Origin())

	_, found = r.Get(Packet("core.z"))
	assert.False(t, found)
}

func TestRefDecompose(t *testing.T) {
	double := MakeRef(CanonicalRefsPath, func(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node {
		return g.AddCallFunction(Prims.Qualified("add"), inputs[0], inputs[0])
	})
	assert.Equal(t, CanonicalRefsPath, double.Origin())

	g := fxgraph.New("test")
	x := g.AddPlaceholder("x")
	out := double.Decompose(g, x)
	assert.Equal(t, "ops.prims.add", out.Target())
}

func TestNamespace(t *testing.T) {
	ns := NewNamespace("test")
	assert.Equal(t, "test", ns.Name())
	p := ns.DefinePacket("exp")
	assert.Equal(t, Packet("test.exp"), p)
	assert.Equal(t, "ops.test.exp", ns.Qualified("exp"))
	ns.Set("doc", "not an operator")

	// Attrs enumerates everything, sorted by name.
	var names []string
	numPackets := 0
	for name, attr := range ns.Attrs() {
		names = append(names, name)
		if _, ok := attr.(Packet); ok {
			numPackets++
		}
	}
	assert.Equal(t, []string{"doc", "exp"}, names)
	assert.Equal(t, 1, numPackets)

	value, found := ns.Get("exp")
	require.True(t, found)
	assert.Equal(t, p, value)
	require.Panics(t, func() { ns.Set("", 1) })
}

func TestPrims(t *testing.T) {
	// A few anchors of the primitive set used by reference decompositions.
	for _, name := range []string{"add", "exp", "logistic", "amax", "sum", "broadcast_in_dim", "cat", "maximum", "transpose"} {
		value, found := Prims.Get(name)
		require.True(t, found, "missing primitive %q", name)
		assert.Equal(t, Packet("prims."+name), value)
	}
	// "doc" is an attribute but not an operator.
	value, found := Prims.Get("doc")
	require.True(t, found)
	_, isPacket := value.(Packet)
	assert.False(t, isPacket)
}
