// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct {
	X, Y float32
}

func TestEntityRecycling(t *testing.T) {
	w := NewWorld()
	a := w.NewEntity()
	b := w.NewEntity()
	assert.False(t, a.IsNil())
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, w.Len())
	assert.True(t, Nil.IsNil())
	assert.Equal(t, "nil", Nil.String())
	assert.Equal(t, "0v1", a.String())

	require.True(t, w.Destroy(a))
	assert.False(t, w.Alive(a))
	assert.False(t, w.Destroy(a))

	c := w.NewEntity()
	assert.Equal(t, a.Index, c.Index)
	assert.Equal(t, a.Gen+1, c.Gen)
	assert.False(t, w.Alive(a), "stale handle must not alias the recycled slot")
	assert.True(t, w.Alive(c))
	assert.Equal(t, []Entity{c, b}, w.Entities())
	assert.Equal(t, 1, Compare(b, c))
}

func TestStoreEvents(t *testing.T) {
	w := NewWorld()
	s := NewStore[position](w, "position")
	rd := s.Events().Register()
	e := w.NewEntity()

	s.Set(e, position{1, 2})
	s.Set(e, position{3, 4})
	assert.True(t, s.Update(e, func(p *position) { p.X = 5 }))
	assert.True(t, s.Touch(e))

	p, ok := s.Get(e)
	require.True(t, ok)
	assert.Equal(t, position{5, 4}, p)

	// silent write
	s.Ref(e).Y = 9
	p, _ = s.Get(e)
	assert.Equal(t, float32(9), p.Y)

	assert.Equal(t, []ComponentEvent{
		{Inserted, e}, {Modified, e}, {Modified, e}, {Modified, e},
	}, s.Events().Read(rd))

	other := w.NewEntity()
	assert.False(t, s.Update(other, func(p *position) {}))
	assert.False(t, s.Touch(other))
	assert.Nil(t, s.Ref(other))
	assert.Empty(t, s.Events().Read(rd))

	assert.True(t, s.Remove(e))
	assert.False(t, s.Remove(e))
	assert.Equal(t, []ComponentEvent{{Removed, e}}, s.Events().Read(rd))
	assert.Equal(t, 0, s.Len())
}

func TestDestroyBatch(t *testing.T) {
	w := NewWorld()
	pos := NewStore[position](w, "position")
	names := NewStore[string](w, "name")
	rd := pos.Events().Register()

	var es []Entity
	for i := range 4 {
		e := w.NewEntity()
		pos.Set(e, position{X: float32(i)})
		names.Set(e, "n")
		es = append(es, e)
	}
	pos.Events().Read(rd)

	n := w.DestroyBatch([]Entity{es[0], es[2], es[2], Nil})
	assert.Equal(t, 2, n)
	assert.Equal(t, []Entity{es[1], es[3]}, pos.Entities())
	assert.Equal(t, []Entity{es[1], es[3]}, names.Entities())
	assert.Equal(t, []ComponentEvent{{Removed, es[0]}, {Removed, es[2]}}, pos.Events().Read(rd))
	assert.Equal(t, 2, w.Len())
	assert.Len(t, w.Stores(), 2)
	assert.Equal(t, "name", w.Stores()[1].Name())
}
