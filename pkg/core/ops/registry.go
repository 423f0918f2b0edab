// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"iter"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/fuser/pkg/core/fxgraph"
)

// DecomposeFn rewrites one high-level operator call into lower-level operations, appending
// them to the given graph and returning the node holding the result.
type DecomposeFn func(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node

// Ref is a reference decomposition: an implementation of an operator purely in terms of
// lower-level primitives, tagged with the package path it was defined in.
type Ref struct {
	fn     DecomposeFn
	origin string
}

// MakeRef creates a Ref with the given origin package path and implementation.
func MakeRef(origin string, fn DecomposeFn) Ref {
	if fn == nil {
		exceptions.Panicf("ops: MakeRef(origin=%q) requires a non-nil DecomposeFn", origin)
	}
	return Ref{fn: fn, origin: origin}
}

// Origin implements Origined: the package path the decomposition was defined in.
func (r Ref) Origin() string { return r.origin }

// Decompose applies the reference decomposition on the graph.
func (r Ref) Decompose(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node {
	return r.fn(g, inputs...)
}

// Registry maps operator identifiers (possibly overload-specific) to their reference
// implementations. Values are kept as `any`: support checking only inspects the optional
// Origined interface, and callers that apply decompositions type-assert to Ref.
//
// Registration happens during package initialization; afterwards the registry is read-only
// and safe for concurrent iteration. Iteration follows insertion order, so enumeration is
// deterministic within one process.
type Registry struct {
	keys  []Key
	index map[string]int
	impls []any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register the implementation of the operator identified by key.
// Registering the same key again replaces the previous implementation.
func (r *Registry) Register(key Key, impl any) {
	if key == nil || impl == nil {
		exceptions.Panicf("ops: Registry.Register requires a non-nil key and implementation, got key=%v", key)
	}
	name := key.String()
	if pos, found := r.index[name]; found {
		r.keys[pos] = key
		r.impls[pos] = impl
		return
	}
	r.index[name] = len(r.keys)
	r.keys = append(r.keys, key)
	r.impls = append(r.impls, impl)
}

// Get returns the implementation registered for key, if any.
func (r *Registry) Get(key Key) (impl any, found bool) {
	pos, found := r.index[key.String()]
	if !found {
		return nil, false
	}
	return r.impls[pos], true
}

// Len returns the number of registered operators.
func (r *Registry) Len() int { return len(r.keys) }

// All iterates over the (key, implementation) pairs in insertion order.
func (r *Registry) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for pos, key := range r.keys {
			if !yield(key, r.impls[pos]) {
				return
			}
		}
	}
}

// Decompositions is the process-wide decomposition registry. Packages providing reference
// decompositions (see github.com/gomlx/fuser/pkg/core/refs) register themselves here.
//
// To be safe, register during package initialization only.
var Decompositions = NewRegistry()

// RegisterDecomposition adds the implementation of the operator identified by key to the
// process-wide Decompositions registry.
func RegisterDecomposition(key Key, impl any) {
	Decompositions.Register(key, impl)
}
