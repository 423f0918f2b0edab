// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

// Prims is the process-wide namespace of primitive operators: the minimal operator set that
// backends implement directly and that reference decompositions lower to.
var Prims = NewNamespace("prims")

func init() {
	Prims.Set("doc", "Primitive operators: the target language of reference decompositions.")
	for _, name := range []string{
		// Elementwise unary:
		"abs",
		"acos",
		"acosh",
		"asin",
		"asinh",
		"atan",
		"atanh",
		"bitwise_not",
		"ceil",
		"cos",
		"cosh",
		"erf",
		"erfc",
		"exp",
		"expm1",
		"floor",
		"isfinite",
		"lgamma",
		"log",
		"log10",
		"log1p",
		"log2",
		"logistic",
		"neg",
		"reciprocal",
		"round",
		"rsqrt",
		"sign",
		"sin",
		"sinh",
		"sqrt",
		"tan",
		"tanh",
		"trunc",

		// Elementwise binary:
		"add",
		"atan2",
		"bitwise_and",
		"bitwise_or",
		"bitwise_xor",
		"div",
		"eq",
		"fmod",
		"ge",
		"gt",
		"le",
		"lt",
		"maximum",
		"minimum",
		"mul",
		"ne",
		"pow",
		"rem",
		"shift_left",
		"shift_right_arithmetic",
		"sub",

		// Conditional:
		"where",

		// Reductions:
		"amax",
		"amin",
		"prod",
		"sum",

		// View and data movement:
		"broadcast_in_dim",
		"cat",
		"collapse_view",
		"convert_element_type",
		"slice",
		"split_dim",
		"squeeze",
		"transpose",
	} {
		Prims.DefinePacket(name)
	}
}
