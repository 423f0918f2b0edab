// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package refs

import (
	"testing"

	"github.com/gomlx/fuser/pkg/core/fuser"
	"github.com/gomlx/fuser/pkg/core/fxgraph"
	"github.com/gomlx/fuser/pkg/core/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistration(t *testing.T) {
	for _, key := range []ops.Key{
		ops.Packet("core.frac"),
		ops.Packet("core.rsub"),
		ops.Packet("core.sigmoid"),
		ops.Packet("core.silu"),
		ops.Packet("core.square"),
		ops.MakeOverload("core.log_softmax", "int"),
		ops.MakeOverload("core.softmax", "int"),
	} {
		impl, found := ops.Decompositions.Get(key)
		require.True(t, found, "decomposition for %s not registered", key)
		origined, ok := impl.(ops.Origined)
		require.True(t, ok)
		assert.Equal(t, ops.CanonicalRefsPath, origined.Origin())
	}
}

// TestDecompositionsAreSupported checks the transitive-support story end to end: every
// primitive emitted by a canonical reference decomposition must itself be accepted by the
// default support table.
func TestDecompositionsAreSupported(t *testing.T) {
	support := fuser.NewDefault()
	for key, impl := range ops.Decompositions.All() {
		ref, ok := impl.(ops.Ref)
		require.True(t, ok, "decomposition for %s is not an ops.Ref", key)

		g := fxgraph.New(key.String())
		a := g.AddPlaceholder("a")
		b := g.AddPlaceholder("b")
		out := ref.Decompose(g, a, b)
		require.NotNil(t, out)

		for _, node := range g.Nodes() {
			if !fxgraph.CallableNodeKinds.Has(node.Kind()) {
				continue
			}
			assert.True(t, support.IsNodeSupported(g.Submodules(), node),
				"decomposition of %s emits unsupported node %s", key, node)
		}
	}
}

func TestSoftmaxDecomposition(t *testing.T) {
	impl, found := ops.Decompositions.Get(ops.MakeOverload("core.softmax", "int"))
	require.True(t, found)
	ref := impl.(ops.Ref)

	g := fxgraph.New("softmax")
	x := g.AddPlaceholder("x")
	out := ref.Decompose(g, x)
	assert.Equal(t, "ops.prims.div", out.Target())

	// Only primitives are emitted.
	for _, node := range g.Nodes()[1:] {
		assert.Equal(t, fxgraph.KindCallFunction, node.Kind())
		assert.Contains(t, node.Target(), "ops.prims.")
	}
}
