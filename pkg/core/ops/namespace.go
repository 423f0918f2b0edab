// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"iter"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/fuser/pkg/support/xslices"
)

// Namespace is an enumerable attribute table of one operator namespace, e.g. "prims".
//
// Attribute values that are Packet are operators; any other value (documentation, helper
// functions) is skipped by enumerators looking for operators. Namespaces are populated during
// package initialization and read-only afterwards.
type Namespace struct {
	name  string
	attrs map[string]any
}

// NewNamespace creates an empty namespace with the given name, e.g. "prims".
func NewNamespace(name string) *Namespace {
	if name == "" {
		exceptions.Panicf("ops: NewNamespace requires a name")
	}
	return &Namespace{name: name, attrs: make(map[string]any)}
}

// Name of the namespace, e.g. "prims".
func (ns *Namespace) Name() string { return ns.name }

// Set defines the attribute name with the given value.
func (ns *Namespace) Set(name string, value any) {
	if name == "" || value == nil {
		exceptions.Panicf("ops: Namespace(%q).Set requires a name and non-nil value, got name=%q", ns.name, name)
	}
	ns.attrs[name] = value
}

// DefinePacket defines the attribute name as the operator packet "<namespace>.<name>" and
// returns it. E.g.: Prims.DefinePacket("exp") defines the packet "prims.exp".
func (ns *Namespace) DefinePacket(name string) Packet {
	p := Packet(ns.name + "." + name)
	ns.Set(name, p)
	return p
}

// Get returns the value of the attribute name, if defined.
func (ns *Namespace) Get(name string) (value any, found bool) {
	value, found = ns.attrs[name]
	return
}

// Qualified returns the fully-qualified operator name of an attribute of this namespace.
// E.g.: Prims.Qualified("exp") == "ops.prims.exp".
func (ns *Namespace) Qualified(attr string) string {
	return Qualified(ns.name + "." + attr)
}

// Attrs iterates over all attributes (operators or not) sorted by name.
func (ns *Namespace) Attrs() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, name := range xslices.SortedKeys(ns.attrs) {
			if !yield(name, ns.attrs[name]) {
				return
			}
		}
	}
}
