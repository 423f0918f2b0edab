// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package refs provides the canonical reference decompositions: rewrites of high-level "core"
// operators purely in terms of "prims" primitives.
//
// Importing the package registers the decompositions in ops.Decompositions, tagged with
// ops.CanonicalRefsPath. That tag is what promotes an operator into the fusion backend's
// support table beyond the hand-curated legacy list (see pkg/core/fuser).
//
// Decompositions here intentionally carry no shape or dtype information: they express the
// dataflow of an operator in primitives, which is all support checking and lowering need from
// the graph layer.
package refs

import (
	"github.com/gomlx/fuser/pkg/core/fxgraph"
	"github.com/gomlx/fuser/pkg/core/ops"
)

func init() {
	register(ops.Packet("core.frac"), frac)
	register(ops.Packet("core.rsub"), rsub)
	register(ops.Packet("core.sigmoid"), sigmoid)
	register(ops.Packet("core.silu"), silu)
	register(ops.Packet("core.square"), square)
	register(ops.MakeOverload("core.log_softmax", "int"), logSoftmax)
	register(ops.MakeOverload("core.softmax", "int"), softmax)
}

func register(key ops.Key, fn ops.DecomposeFn) {
	ops.RegisterDecomposition(key, ops.MakeRef(ops.CanonicalRefsPath, fn))
}

// prim appends one primitive call to the graph.
func prim(g *fxgraph.Graph, name string, inputs ...*fxgraph.Node) *fxgraph.Node {
	return g.AddCallFunction(ops.Prims.Qualified(name), inputs...)
}

// frac(x) = x - trunc(x)
func frac(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node {
	x := inputs[0]
	return prim(g, "sub", x, prim(g, "trunc", x))
}

// rsub(a, b) = b - a
func rsub(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node {
	return prim(g, "sub", inputs[1], inputs[0])
}

// sigmoid(x) = logistic(x)
func sigmoid(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node {
	return prim(g, "logistic", inputs[0])
}

// silu(x) = x * logistic(x)
func silu(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node {
	x := inputs[0]
	return prim(g, "mul", x, prim(g, "logistic", x))
}

// square(x) = x * x
func square(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node {
	x := inputs[0]
	return prim(g, "mul", x, x)
}

// shiftedExp computes exp(x - amax(x)), the numerically stable core shared by the softmax
// variants. The max is broadcast back to x's shape before the subtraction.
func shiftedExp(g *fxgraph.Graph, x *fxgraph.Node) *fxgraph.Node {
	max := prim(g, "broadcast_in_dim", prim(g, "amax", x))
	return prim(g, "exp", prim(g, "sub", x, max))
}

// softmax(x, dim) = exp(x - amax(x)) / sum(exp(x - amax(x)))
func softmax(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node {
	e := shiftedExp(g, inputs[0])
	return prim(g, "div", e, prim(g, "broadcast_in_dim", prim(g, "sum", e)))
}

// log_softmax(x, dim) = (x - amax(x)) - log(sum(exp(x - amax(x))))
func logSoftmax(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node {
	x := inputs[0]
	max := prim(g, "broadcast_in_dim", prim(g, "amax", x))
	shifted := prim(g, "sub", x, max)
	sum := prim(g, "sum", prim(g, "exp", shifted))
	return prim(g, "sub", shifted, prim(g, "broadcast_in_dim", prim(g, "log", sum)))
}
