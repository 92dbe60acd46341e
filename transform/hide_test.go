// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/tree"
	"github.com/stretchr/testify/assert"
)

func TestHidePropagation(t *testing.T) {
	w := ecs.NewWorld()
	tr := tree.New(w)
	hidden := ecs.NewStore[Hidden](w, "Hidden")
	prop := ecs.NewStore[HiddenPropagate](w, "HiddenPropagate")
	h := NewHidePropagator(tr, hidden, prop)

	add := func(parent ecs.Entity) ecs.Entity {
		e := w.NewEntity()
		tr.Add(e, parent)
		return e
	}
	root := add(ecs.Nil)
	a := add(root)
	b := add(a)
	c := add(b)
	other := add(root)
	h.Run()
	assert.Equal(t, 0, prop.Len())

	hidden.Set(a, Hidden{})
	assert.Equal(t, 2, h.Run())
	assert.True(t, h.IsHidden(a))
	assert.True(t, h.IsHidden(c))
	assert.False(t, h.IsHidden(other))
	assert.False(t, prop.Has(a))

	// children added under a hidden node inherit it
	late := add(b)
	assert.Equal(t, 1, h.Run())
	assert.True(t, h.IsHidden(late))

	// a descendant hidden on its own stays hidden when the ancestor is shown
	hidden.Set(b, Hidden{})
	h.Run()
	hidden.Remove(a)
	h.Run()
	assert.False(t, h.IsHidden(a))
	assert.True(t, h.IsHidden(b))
	assert.False(t, prop.Has(b))
	assert.True(t, h.IsHidden(c))

	// moving out from under the hidden node shows it again
	tr.Update(c, other)
	h.Run()
	assert.False(t, h.IsHidden(c))

	// detaching without destroying clears inherited state
	tr.Update(c, b)
	h.Run()
	assert.True(t, h.IsHidden(c))
	tr.Remove(c, false)
	h.Run()
	assert.False(t, h.IsHidden(c))
	h.Close()
}
