// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fuser

import (
	"sync"

	"github.com/gomlx/fuser/pkg/core/fxgraph"
)

// FusionDefiner is the entry point of the native fusion backend: it consumes a partitioned
// subgraph of supported nodes and produces an executable fusion.
//
// The native binding is optional. Not every build ships it, and nothing in this package
// requires it: support tables can be built and queried in environments without a registered
// definer -- they are just used by no actual backend then.
type FusionDefiner interface {
	// DefineFusion lowers the given nodes (in execution order) into a native fusion
	// definition with the given name.
	DefineFusion(name string, nodes []*fxgraph.Node) error
}

var (
	muNative      sync.Mutex
	fusionDefiner FusionDefiner
)

// RegisterFusionDefiner is called by the native binding during package initialization.
// The last registered definer wins.
func RegisterFusionDefiner(definer FusionDefiner) {
	muNative.Lock()
	defer muNative.Unlock()
	fusionDefiner = definer
}

// NativeFusion returns the registered native binding, or nil if this build has none.
func NativeFusion() FusionDefiner {
	muNative.Lock()
	defer muNative.Unlock()
	return fusionDefiner
}

// HasNativeFusion reports whether a native fusion binding is registered.
func HasNativeFusion() bool {
	return NativeFusion() != nil
}
