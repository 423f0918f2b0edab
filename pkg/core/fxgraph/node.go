// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fxgraph

import "fmt"

// NodeId is a unique identifier of a Node within its Graph.
type NodeId int

// InvalidNodeId is returned by Node.Id for nil nodes.
const InvalidNodeId = NodeId(-1)

// Node is one entry of a traced Graph: either a structural marker (placeholder, output,
// attribute access) or a call to an operator, method or submodule.
//
// Nodes are created through the Graph.Add* methods and are immutable afterwards.
type Node struct {
	graph  *Graph
	id     NodeId
	kind   NodeKind
	target string
	inputs []*Node
}

// Kind of the node. It returns KindInvalid for nil nodes.
func (n *Node) Kind() NodeKind {
	if n == nil {
		return KindInvalid
	}
	return n.kind
}

// Target is the fully-qualified operator name for call-function nodes, the method name for
// call-method nodes, the submodule name for call-module nodes, the attribute path for
// get-attr nodes and the input name for placeholders. It is empty for output and nil nodes.
func (n *Node) Target() string {
	if n == nil {
		return ""
	}
	return n.target
}

// Graph that holds this Node.
func (n *Node) Graph() *Graph {
	if n == nil {
		return nil
	}
	return n.graph
}

// Id is the unique id of this node within the Graph.
func (n *Node) Id() NodeId {
	if n == nil {
		return InvalidNodeId
	}
	return n.id
}

// Inputs are the edges of the graph: the nodes whose values this node consumes.
// The returned slice is owned by the node and must not be modified.
func (n *Node) Inputs() []*Node {
	if n == nil {
		return nil
	}
	return n.inputs
}

// String returns a short description of the node, e.g. `%3 = call_function[ops.core.add](%1, %2)`.
func (n *Node) String() string {
	if n == nil {
		return "Node(nil)"
	}
	inputs := make([]any, 0, len(n.inputs))
	for _, input := range n.inputs {
		inputs = append(inputs, fmt.Sprintf("%%%d", input.Id()))
	}
	return fmt.Sprintf("%%%d = %s[%s]%v", n.id, n.kind, n.target, inputs)
}
