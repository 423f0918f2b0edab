// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package xslices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	m := map[string]int{"c": 2, "a": 0, "b": 1}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, Keys(m))
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))

	// Defined map types must work as well.
	type stringSet map[string]struct{}
	s := stringSet{"y": {}, "x": {}}
	assert.Equal(t, []string{"x", "y"}, SortedKeys(s))
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(e int) int { return 2 * e })
	assert.Equal(t, []int{2, 4, 6}, got)
}
