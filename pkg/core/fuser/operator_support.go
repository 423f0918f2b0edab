// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package fuser implements the operator-support decision used when partitioning traced graphs
// for the fusion backend.
//
// Partitioning runs on graphs of high-level "core" operators; fused subgraphs are only later
// decomposed into "prims" primitives. To decide whether a core operator is supported by the
// fusion backend, we check the primitives used in its reference decomposition: when every
// primitive in the reference has a fusion lowering, the operator is deemed supported. This
// package assembles the resulting membership table; verifying the full transitive
// decomposition at lowering time is the backend's job.
package fuser

import (
	"strings"

	"github.com/gomlx/fuser/pkg/core/fxgraph"
	"github.com/gomlx/fuser/pkg/core/ops"
	"github.com/gomlx/fuser/pkg/support/sets"
	"github.com/gomlx/fuser/pkg/support/xslices"
	"k8s.io/klog/v2"
)

// unsupportedPrims are primitives the fusion backend has no lowering for. Matching is by
// substring: any primitive whose name contains one of these entries is excluded, so e.g.
// "scatter_add" is excluded because it contains "cat".
var unsupportedPrims = []string{"cat", "maximum", "transpose"}

// OperatorSupport reports, node by node, whether the fusion backend has an equivalent
// implementation of a traced-graph operation.
//
// The table is assembled once at construction and never mutated afterwards, so a single
// OperatorSupport can be queried concurrently.
type OperatorSupport struct {
	supported sets.Set[string]
}

// New builds an OperatorSupport from the given decomposition registry and primitives
// namespace. Both are read-only inputs consulted only during construction: the resulting
// table holds no reference to them, and independently built tables share no state.
//
// With useOnlyLegacyOps the registries are not consulted and the table is exactly the
// hand-curated legacy seed.
func New(registry *ops.Registry, prims *ops.Namespace, useOnlyLegacyOps bool) *OperatorSupport {
	return &OperatorSupport{supported: buildSupportTable(registry, prims, useOnlyLegacyOps)}
}

// NewDefault builds an OperatorSupport from the process-wide registries, ops.Decompositions
// and ops.Prims.
func NewDefault() *OperatorSupport {
	return New(ops.Decompositions, ops.Prims, false)
}

// buildSupportTable assembles the set of fully-qualified operator names considered supported.
// It always returns an independent copy, never aliasing the package-level seed.
func buildSupportTable(registry *ops.Registry, prims *ops.Namespace, useOnlyLegacyOps bool) sets.Set[string] {
	table := legacySupported.Clone()
	if useOnlyLegacyOps {
		return table
	}

	if registry != nil {
		// Take the operators whose reference decomposition was defined in the canonical
		// refs package. Overload-specific keys collapse to their packet.
		for key, impl := range registry.All() {
			origined, ok := impl.(ops.Origined)
			if !ok || !strings.Contains(origined.Origin(), ops.CanonicalRefsPath) {
				continue
			}
			name := key.String()
			if overload, ok := key.(ops.Overloaded); ok {
				name = overload.Packet().String()
			}
			table.Insert(ops.Qualified(name))
		}
	}

	if prims != nil {
		for name, attr := range prims.Attrs() {
			if _, ok := attr.(ops.Packet); !ok {
				// Namespace attribute that is not an operator.
				continue
			}
			if containsAny(name, unsupportedPrims) {
				continue
			}
			table.Insert(prims.Qualified(name))
		}
	}

	klog.V(1).Infof("fuser: support table built with %d operators (%d from the legacy seed)",
		len(table), len(legacySupported))
	return table
}

func containsAny(name string, parts []string) bool {
	for _, part := range parts {
		if strings.Contains(name, part) {
			return true
		}
	}
	return false
}

// IsNodeSupported implements NodeSupport.
//
// Fused subgraphs must be purely functional, so only callable nodes can be claimed:
// structural nodes (placeholders, outputs, attribute accesses) and nodes of unknown kind are
// always reported unsupported. For callable nodes, the decision is membership of the node's
// fully-qualified target in the support table.
//
// submodules is part of the broader partitioner contract and is not consulted here.
func (s *OperatorSupport) IsNodeSupported(submodules map[string]fxgraph.Module, node *fxgraph.Node) bool {
	if !fxgraph.CallableNodeKinds.Has(node.Kind()) {
		return false
	}
	return s.supported.Has(node.Target())
}

// SupportedOps returns the sorted fully-qualified names of all operators in the table.
func (s *OperatorSupport) SupportedOps() []string {
	return xslices.SortedKeys(s.supported)
}

// NumSupported returns the size of the support table.
func (s *OperatorSupport) NumSupported() int {
	return len(s.supported)
}
