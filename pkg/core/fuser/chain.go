// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fuser

import "github.com/gomlx/fuser/pkg/core/fxgraph"

// NodeSupport is the predicate the partitioner consults for each node of a traced graph.
// Implementations must be pure: safe for repeated and concurrent calls.
type NodeSupport interface {
	IsNodeSupported(submodules map[string]fxgraph.Module, node *fxgraph.Node) bool
}

// NodeSupportFn adapts a function to the NodeSupport interface.
type NodeSupportFn func(submodules map[string]fxgraph.Module, node *fxgraph.Node) bool

// IsNodeSupported implements NodeSupport.
func (fn NodeSupportFn) IsNodeSupported(submodules map[string]fxgraph.Module, node *fxgraph.Node) bool {
	return fn(submodules, node)
}

// Chain combines support predicates: a node is supported only if every predicate in the chain
// accepts it. An empty chain accepts every node.
func Chain(supports ...NodeSupport) NodeSupport {
	return chainSupport(supports)
}

type chainSupport []NodeSupport

func (c chainSupport) IsNodeSupported(submodules map[string]fxgraph.Module, node *fxgraph.Node) bool {
	for _, support := range c {
		if !support.IsNodeSupported(submodules, node) {
			return false
		}
	}
	return true
}
