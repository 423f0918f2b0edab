// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ops defines the operator identifiers used as call targets in traced graphs, and the
// process-wide registries consulted when deciding backend support: the decomposition registry
// (Decompositions) and the primitive operator namespace (Prims).
//
// Operator names are relative to the root operator namespace and qualified with the "ops."
// prefix when used as graph call targets: the packet "core.add" appears in graphs as
// "ops.core.add", the primitive "prims.exp" as "ops.prims.exp".
package ops

// prefix of all fully-qualified operator names.
const prefix = "ops."

// Qualified returns the fully-qualified operator name used as a call-function target.
// E.g.: Qualified("core.add") == "ops.core.add".
func Qualified(name string) string {
	return prefix + name
}

// Packet is the overload-independent name of a (possibly polymorphic) operator, relative to
// the root operator namespace. E.g.: "core.sum" groups the overloads "core.sum.dim" and
// "core.sum.all" under one logical operator.
type Packet string

// String implements Key.
func (p Packet) String() string { return string(p) }

// QualifiedName returns the fully-qualified form used as a graph call target.
func (p Packet) QualifiedName() string { return Qualified(string(p)) }

// Overload identifies one concrete overload of a polymorphic operator.
type Overload struct {
	packet  Packet
	variant string
}

// MakeOverload creates the given variant of the operator packet.
// E.g.: MakeOverload("core.sum", "dim") prints as "core.sum.dim".
func MakeOverload(packet Packet, variant string) Overload {
	return Overload{packet: packet, variant: variant}
}

// Packet returns the overload-independent operator this overload belongs to.
func (o Overload) Packet() Packet { return o.packet }

// Variant name of the overload, e.g. "dim". It may be empty for the default overload.
func (o Overload) Variant() string { return o.variant }

// String implements Key.
func (o Overload) String() string {
	if o.variant == "" {
		return string(o.packet)
	}
	return string(o.packet) + "." + o.variant
}

// Key identifies an operator in a registry: typically a Packet or an Overload, but any type
// that can print its name relative to the root operator namespace works.
type Key interface {
	String() string
}

// Overloaded is implemented by Key types that denote one specific overload of a polymorphic
// operator. Support checking collapses such keys to their packet, so all overloads of one
// logical operator share a single support entry.
type Overloaded interface {
	Packet() Packet
}

// Origined is implemented by decomposition implementations that declare the package path they
// were defined in. Registry values that do not implement it are never considered canonical
// references.
type Origined interface {
	Origin() string
}

// CanonicalRefsPath tags the decompositions considered authoritative for support checking:
// the reference decompositions defined in package github.com/gomlx/fuser/pkg/core/refs.
const CanonicalRefsPath = "github.com/gomlx/fuser/pkg/core/refs"
