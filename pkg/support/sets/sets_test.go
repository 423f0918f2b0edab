// Copyright 2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := Make[int](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s2 := MakeWith(5, 7)
	assert.Len(t, s2, 2)
	assert.True(t, s2.Has(5))
	assert.False(t, s2.Has(3))

	s3 := s.Sub(s2)
	assert.Len(t, s3, 1)
	assert.True(t, s3.Has(3))

	delete(s, 7)
	assert.True(t, s.Equal(s3))
	assert.False(t, s.Equal(s2))
}

func TestSetClone(t *testing.T) {
	s := MakeWith("a", "b")
	s2 := s.Clone()
	assert.True(t, s.Equal(s2))

	// Mutating the clone must not leak into the original.
	s2.Insert("c")
	assert.False(t, s.Has("c"))
	assert.False(t, s.Equal(s2))
}
