// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/math32"
	"cogentcore.org/scene2d/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

type fixture struct {
	world      *ecs.World
	tree       *tree.Tree
	transforms *ecs.Store[Transform]
	prop       *Propagator
}

func newFixture() *fixture {
	w := ecs.NewWorld()
	tr := tree.New(w)
	ts := ecs.NewStore[Transform](w, "Transform")
	return &fixture{world: w, tree: tr, transforms: ts, prop: NewPropagator(tr, ts)}
}

func (f *fixture) spawn(t *testing.T, parent ecs.Entity, x, y float32) ecs.Entity {
	t.Helper()
	e := f.world.NewEntity()
	f.transforms.Set(e, NewAt(x, y, 0))
	_, err := f.tree.Add(e, parent)
	require.NoError(t, err)
	return e
}

func (f *fixture) global(e ecs.Entity) math32.Vector3 {
	tr, _ := f.transforms.Get(e)
	return tr.GlobalPosition()
}

func TestParentBeforeChild(t *testing.T) {
	f := newFixture()
	root := f.spawn(t, ecs.Nil, 10, 20)
	a := f.spawn(t, root, 1, 2)
	b := f.spawn(t, a, 3, 4)
	c := f.spawn(t, root, -5, 0)

	assert.Equal(t, 4, f.prop.Run())
	assert.Empty(t, Check(f.tree, f.transforms, tol))
	assert.Equal(t, math32.Vec3(14, 26, 0), f.global(b))
	assert.Equal(t, math32.Vec3(5, 20, 0), f.global(c))

	// no pending events: nothing to do
	assert.Equal(t, 0, f.prop.Run())

	// rotating and scaling the root moves the whole subtree, each once
	f.transforms.Update(root, func(tr *Transform) {
		tr.SetRotationEuler(0, 0, math32.DegToRad(90)).SetScale(2, 2, 1)
	})
	f.transforms.Update(b, func(tr *Transform) { tr.SetPositionX(13) })
	assert.Equal(t, 4, f.prop.Run())
	assert.Empty(t, Check(f.tree, f.transforms, tol))
	g := f.global(a)
	assert.InDelta(t, 10-4, g.X, tol)
	assert.InDelta(t, 20+2, g.Y, tol)
}

func TestReparentRecomputes(t *testing.T) {
	f := newFixture()
	r1 := f.spawn(t, ecs.Nil, 100, 0)
	r2 := f.spawn(t, ecs.Nil, 0, 100)
	e := f.spawn(t, r1, 1, 1)
	k := f.spawn(t, e, 1, 1)
	f.prop.Run()
	assert.Equal(t, math32.Vec3(102, 2, 0), f.global(k))

	_, err := f.tree.Update(e, r2)
	require.NoError(t, err)
	assert.Equal(t, 2, f.prop.Run())
	assert.Equal(t, math32.Vec3(2, 102, 0), f.global(k))
	assert.Empty(t, Check(f.tree, f.transforms, tol))
}

func TestRemovedAndMissing(t *testing.T) {
	f := newFixture()
	root := f.spawn(t, ecs.Nil, 5, 5)

	// a child without a transform: its own children use the identity
	bare := f.world.NewEntity()
	f.tree.Add(bare, root)
	leaf := f.spawn(t, bare, 1, 0)
	f.prop.Run()
	assert.Equal(t, math32.Vec3(1, 0, 0), f.global(leaf))

	// destroyed before the run: silently skipped
	gone := f.spawn(t, root, 1, 1)
	f.tree.Remove(gone, true)
	f.transforms.Update(root, func(tr *Transform) { tr.Position.X = 6 })
	assert.Equal(t, 2, f.prop.Run())

	f.transforms.Set(bare, NewAt(0, 1, 0))
	f.prop.Run()
	assert.Equal(t, math32.Vec3(7, 6, 0), f.global(leaf))
	assert.Empty(t, Check(f.tree, f.transforms, tol))
}

func TestUpdateAll(t *testing.T) {
	f := newFixture()
	root := f.spawn(t, ecs.Nil, 1, 1)
	child := f.spawn(t, root, 1, 1)
	f.transforms.Ref(child).Position.X = 5 // silent write
	assert.Equal(t, 2, f.prop.UpdateAll())
	assert.Equal(t, math32.Vec3(6, 2, 0), f.global(child))
	assert.Equal(t, 0, f.prop.Run())
	f.prop.Close()
}

func TestViewMatrix(t *testing.T) {
	tr := NewAt(3, -2, 1)
	tr.SetRotationEuler(0.2, 0.1, 0.7).SetScale(2, 3, 1)
	local := tr.LocalMatrix()
	view := tr.ViewMatrix()
	id := math32.Identity4()
	prod := view.Mul(&local)
	assert.True(t, prod.EqualTol(&id, tol))

	tr.GlobalMatrix = local
	gv := tr.GlobalViewMatrix()
	assert.True(t, gv.EqualTol(&view, tol))
	assert.Contains(t, tr.String(), "pos=(3, -2, 1)")
}
