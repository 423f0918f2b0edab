// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fuser

import "github.com/gomlx/fuser/pkg/support/sets"

// legacySupported is the hand-curated seed of operators known to lower to the fusion backend.
//
// TODO: this list predates the decomposition-based lowering path and doesn't reflect which
// operators actually reduce to supported primitives; revisit entries as reference
// decompositions land in pkg/core/refs.
//
// Note: when adding an operator, add it to the corresponding section and keep the section in
// alphabetical order.
var legacySupported = sets.MakeWith(
	// ===============================================================
	// call_function core: binary arithmetic
	// ===============================================================
	"ops.core.add",
	"ops.core.atan2",
	// "ops.core.div",       // missing primitive decomposition
	"ops.core.fmod",
	"ops.core.max",
	"ops.core.min",
	"ops.core.mul",
	"ops.core.pow",
	"ops.core.remainder",
	"ops.core.rsub",
	"ops.core.sub",

	// ===============================================================
	// call_function core: bitwise and shifts
	// ===============================================================
	"ops.core.bitwise_and",
	"ops.core.bitwise_left_shift",
	"ops.core.bitwise_not",
	"ops.core.bitwise_or",
	"ops.core.bitwise_right_shift",
	"ops.core.bitwise_xor",

	// ===============================================================
	// call_function core: comparisons
	// ===============================================================
	"ops.core.eq",
	"ops.core.ge",
	"ops.core.gt",
	"ops.core.le",
	"ops.core.lt",
	"ops.core.ne",

	// ===============================================================
	// call_function core: unary
	// ===============================================================
	"ops.core.abs",
	"ops.core.acos",
	"ops.core.asin",
	"ops.core.atan",
	"ops.core.atanh",
	"ops.core.ceil",
	"ops.core.cos",
	"ops.core.cosh",
	"ops.core.erf",
	"ops.core.erfc",
	"ops.core.exp",
	"ops.core.expm1",
	"ops.core.floor",
	"ops.core.frac",
	"ops.core.lgamma",
	"ops.core.log",
	"ops.core.log10",
	"ops.core.log1p",
	"ops.core.log2",
	"ops.core.neg",
	"ops.core.reciprocal",
	"ops.core.relu",
	"ops.core.round",
	"ops.core.rsqrt",
	"ops.core.sigmoid",
	"ops.core.silu",
	"ops.core.sin",
	"ops.core.sinh",
	"ops.core.sqrt",
	"ops.core.tan",
	"ops.core.tanh",
	"ops.core.trunc",

	// ===============================================================
	// call_function core: predicates
	// ===============================================================
	"ops.core.isfinite",
	"ops.core.isinf",
	"ops.core.isnan",
	"ops.core.isneginf",
	"ops.core.isposinf",

	// ===============================================================
	// call_function core: activations and fused forms
	// ===============================================================
	"ops.core.clamp",
	"ops.core.gelu",
	"ops.core.gelu_backward",
	"ops.core.lerp",
	"ops.core.softplus",
	"ops.core.threshold",
	// "ops.core.threshold_backward",  // decomposes through ops.core.new_zeros, which has no primitive lowering
	"ops.core.where",

	// ===============================================================
	// call_function core: dropout and normalization
	// ===============================================================
	"ops.core.batch_norm",
	"ops.core.dropout",
	"ops.core.instance_norm",
	"ops.core.layer_norm",
	"ops.core.native_batch_norm",
	"ops.core.native_batch_norm_backward",
	"ops.core.native_dropout",
	"ops.core.native_dropout_backward",
	"ops.core.native_layer_norm",
	// "ops.core.native_layer_norm_backward",  // decomposes through ops.core.div, which has no primitive lowering

	// ===============================================================
	// call_function core: softmax and reductions
	// ===============================================================
	"ops.core.amin",
	"ops.core.log_softmax.int",
	"ops.core.mean.dim",
	"ops.core.softmax.int",
	"ops.core.std.dim",
	"ops.core.sum.dim",
	"ops.core.sum_to_size",
	"ops.core.var.dim",
	// "ops.core.amax",        // missing primitive decomposition
	// "ops.core.softmax_raw", // decomposes through ops.core.amax, which has no primitive lowering

	// ===============================================================
	// call_function core: casts and views
	// ===============================================================
	"ops.core.flatten",
	"ops.core.linear",
	"ops.core.reshape",
	"ops.core.to.dtype",
	"ops.core.type_as",
	// "ops.core.view",  // missing primitive decomposition

	// ===============================================================
	// call_function core: in-place variants
	// ===============================================================
	// These shouldn't show up: the functionalization pass removes in-place operators.
	// "ops.core.add_",
	// "ops.core.relu_",

	// ===============================================================
	// call_function builtins
	// ===============================================================
	"getattr",
	"builtin.getitem",
)
