// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package fxgraph holds the traced computation graphs that partitioning passes operate on.
//
// A Graph is a flat list of nodes in execution order. Each node is either a structural marker
// (placeholder, output, attribute access) or a call: to an operator by fully-qualified name, to
// a method of a value, or to a named submodule. The model is deliberately minimal: it carries
// exactly what support checking and partitioning need (a kind and a qualified target), not
// shapes, dtypes or values.
package fxgraph

import (
	"github.com/gomlx/exceptions"
)

// Module is implemented by sub-modules that can be targets of call-module nodes.
type Module interface {
	// Name of the module, used in node targets and error messages.
	Name() string
}

// Graph is a traced computation: an ordered list of nodes plus the submodules that
// call-module nodes refer to.
//
// Graphs are not safe for concurrent mutation; once fully built they can be read concurrently.
type Graph struct {
	name       string
	nodes      []*Node
	submodules map[string]Module
}

// New creates an empty Graph with the given name.
func New(name string) *Graph {
	return &Graph{
		name:       name,
		submodules: make(map[string]Module),
	}
}

// Name of the graph.
func (g *Graph) Name() string { return g.name }

// Nodes returns the graph nodes in execution order.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Submodules returns the mapping of submodule name to Module, as passed to support predicates.
// The returned map is owned by the graph and must be treated as read-only.
func (g *Graph) Submodules() map[string]Module { return g.submodules }

// RegisterSubmodule makes m available as a call-module target under the given name.
func (g *Graph) RegisterSubmodule(name string, m Module) {
	if name == "" || m == nil {
		exceptions.Panicf("fxgraph: RegisterSubmodule requires a name and a non-nil module, got name=%q", name)
	}
	g.submodules[name] = m
}

func (g *Graph) newNode(kind NodeKind, target string, inputs ...*Node) *Node {
	if kind != KindOutput && target == "" {
		exceptions.Panicf("fxgraph: %s node in graph %q requires a target", kind, g.name)
	}
	for _, input := range inputs {
		if input.Graph() != g {
			exceptions.Panicf("fxgraph: input %s of new %s node belongs to a different graph", input, kind)
		}
	}
	node := &Node{
		graph:  g,
		id:     NodeId(len(g.nodes)),
		kind:   kind,
		target: target,
		inputs: inputs,
	}
	g.nodes = append(g.nodes, node)
	return node
}

// AddPlaceholder appends a graph input with the given name.
func (g *Graph) AddPlaceholder(name string) *Node {
	return g.newNode(KindPlaceholder, name)
}

// AddGetAttr appends a node reading the attribute at the given path from the owning module.
func (g *Graph) AddGetAttr(path string) *Node {
	return g.newNode(KindGetAttr, path)
}

// AddCallFunction appends a call to the operator with the given fully-qualified name,
// e.g. "ops.core.add".
func (g *Graph) AddCallFunction(target string, inputs ...*Node) *Node {
	return g.newNode(KindCallFunction, target, inputs...)
}

// AddCallMethod appends a call of the named method on inputs[0].
func (g *Graph) AddCallMethod(method string, inputs ...*Node) *Node {
	if len(inputs) == 0 {
		exceptions.Panicf("fxgraph: call-method node %q requires at least the receiver as input", method)
	}
	return g.newNode(KindCallMethod, method, inputs...)
}

// AddCallModule appends a call to the submodule registered under the given name.
// The submodule must have been registered with RegisterSubmodule first.
func (g *Graph) AddCallModule(name string, inputs ...*Node) *Node {
	if _, found := g.submodules[name]; !found {
		exceptions.Panicf("fxgraph: call-module target %q not registered in graph %q", name, g.name)
	}
	return g.newNode(KindCallModule, name, inputs...)
}

// AddOutput appends the output marker of the graph.
func (g *Graph) AddOutput(inputs ...*Node) *Node {
	return g.newNode(KindOutput, "", inputs...)
}
