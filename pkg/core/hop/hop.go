// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package hop implements higher-order operators: operators that receive other callables as
// arguments. They appear in traced graphs as ordinary call-function nodes, so graph rewrites
// treat them as opaque.
package hop

import (
	"github.com/gomlx/fuser/pkg/core/fxgraph"
	"github.com/pkg/errors"
)

// Grid is the launch grid of an accelerator kernel.
type Grid [3]int

// Kernel is a custom accelerator kernel that can be wrapped as an opaque operator in a traced
// graph. Launch runs the kernel over the grid; buffer arguments are mutated in place.
type Kernel interface {
	Name() string
	Launch(grid Grid, args ...any) error
}

// KernelWrapperMutationOp wraps a custom kernel whose effect is in-place mutation of its
// buffer arguments. Wrapping it as a single node keeps the mutation visible across graph
// rewrites: passes must not reorder, duplicate or eliminate the wrapper node.
type KernelWrapperMutationOp struct {
	name string
}

// KernelWrapperMutation is the higher-order operator used to wrap mutating custom kernels.
var KernelWrapperMutation = &KernelWrapperMutationOp{name: "kernel_wrapper_mutation"}

// Name of the operator.
func (op *KernelWrapperMutationOp) Name() string { return op.name }

// QualifiedName is the call target under which the wrapper appears in traced graphs.
func (op *KernelWrapperMutationOp) QualifiedName() string { return "hop." + op.name }

// Call invokes kernel over grid with args: the eager path, used when the wrapper node is
// interpreted instead of lowered.
func (op *KernelWrapperMutationOp) Call(kernel Kernel, grid Grid, args ...any) error {
	if kernel == nil {
		return errors.Errorf("%s called without a kernel", op.QualifiedName())
	}
	if err := kernel.Launch(grid, args...); err != nil {
		return errors.WithMessagef(err, "%s: kernel %q failed", op.QualifiedName(), kernel.Name())
	}
	return nil
}

// Trace records the wrapped kernel invocation as one opaque call-function node of g.
func (op *KernelWrapperMutationOp) Trace(g *fxgraph.Graph, inputs ...*fxgraph.Node) *fxgraph.Node {
	return g.AddCallFunction(op.QualifiedName(), inputs...)
}
