// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package hop

import (
	"testing"

	"github.com/gomlx/fuser/pkg/core/fuser"
	"github.com/gomlx/fuser/pkg/core/fxgraph"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scaleKernel doubles the buffer in place, once per grid "block".
type scaleKernel struct {
	launches []Grid
	fail     error
}

func (k *scaleKernel) Name() string { return "scale" }

func (k *scaleKernel) Launch(grid Grid, args ...any) error {
	if k.fail != nil {
		return k.fail
	}
	k.launches = append(k.launches, grid)
	buffer := args[0].([]float32)
	for i := range buffer {
		buffer[i] *= 2
	}
	return nil
}

func TestCallMutatesInPlace(t *testing.T) {
	kernel := &scaleKernel{}
	buffer := []float32{1, 2, 3}
	require.NoError(t, KernelWrapperMutation.Call(kernel, Grid{4, 1, 1}, buffer))
	assert.Equal(t, []float32{2, 4, 6}, buffer)
	assert.Equal(t, []Grid{{4, 1, 1}}, kernel.launches)
}

func TestCallErrors(t *testing.T) {
	err := KernelWrapperMutation.Call(nil, Grid{1, 1, 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hop.kernel_wrapper_mutation")

	kernel := &scaleKernel{fail: errors.New("out of shared memory")}
	err = KernelWrapperMutation.Call(kernel, Grid{1, 1, 1}, []float32{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `kernel "scale" failed`)
	assert.Contains(t, err.Error(), "out of shared memory")
}

func TestTraceIsOpaque(t *testing.T) {
	g := fxgraph.New("test")
	x := g.AddPlaceholder("x")
	node := KernelWrapperMutation.Trace(g, x)

	// The wrapper shows up as a single ordinary call-function node.
	assert.Equal(t, fxgraph.KindCallFunction, node.Kind())
	assert.Equal(t, "hop.kernel_wrapper_mutation", node.Target())
	assert.Equal(t, []*fxgraph.Node{x}, node.Inputs())

	// The fusion backend never claims the wrapper: the wrapped kernel is a black box.
	support := fuser.NewDefault()
	assert.False(t, support.IsNodeSupported(g.Submodules(), node))
}
