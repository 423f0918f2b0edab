// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fxgraph

import "github.com/gomlx/fuser/pkg/support/sets"

// NodeKind identifies what a traced-graph node represents.
type NodeKind int

const (
	KindInvalid NodeKind = iota

	// KindPlaceholder is a graph input.
	KindPlaceholder

	// KindGetAttr reads an attribute (e.g., a parameter) from the owning module.
	KindGetAttr

	// KindCallFunction calls a free operator, identified by its fully-qualified name.
	KindCallFunction

	// KindCallMethod calls a method on the node's first input.
	KindCallMethod

	// KindCallModule calls a submodule registered in the owning Graph.
	KindCallModule

	// KindOutput marks the graph output.
	KindOutput
)

// String returns the name of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindPlaceholder:
		return "placeholder"
	case KindGetAttr:
		return "get_attr"
	case KindCallFunction:
		return "call_function"
	case KindCallMethod:
		return "call_method"
	case KindCallModule:
		return "call_module"
	case KindOutput:
		return "output"
	default:
		return "invalid"
	}
}

// CallableNodeKinds are the kinds that represent an actual computation.
// Structural kinds (placeholders, outputs, attribute accesses) are excluded.
var CallableNodeKinds = sets.MakeWith(KindCallFunction, KindCallMethod, KindCallModule)
