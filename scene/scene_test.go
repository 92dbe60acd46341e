// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"testing"

	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/layout"
	"cogentcore.org/scene2d/math32"
	"cogentcore.org/scene2d/styles"
	"cogentcore.org/scene2d/text"
	"cogentcore.org/scene2d/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridScene returns a world with a 100x40 grid root at the top-left
// of the viewport and one child per column.
func gridScene(t *testing.T) (*World, ecs.Entity, [2]ecs.Entity) {
	w := New(Options{Width: 800, Height: 600})
	t.Cleanup(w.Close)
	g := layout.NewGrid(nil, []layout.LNumber{layout.Rate(1), layout.Rate(1)})
	g.Size.Set(100, 40)
	root, err := w.Spawn(ecs.Nil, Named("grid"), Element(g))
	require.NoError(t, err)
	var kids [2]ecs.Entity
	for i := range kids {
		kids[i], err = w.Spawn(root, Named([]string{"left", "right"}[i]), Element(&layout.View{}), Cell(layout.NewGridCell(i, 0)))
		require.NoError(t, err)
	}
	return w, root, kids
}

func TestFrame(t *testing.T) {
	w, root, kids := gridScene(t)
	require.NoError(t, w.Frame(context.Background(), 1.0/60))
	assert.Equal(t, uint64(1), w.Frames())
	assert.Empty(t, transform.Check(w.Tree, w.Transforms, 1e-4))

	info := w.Info(kids[1], 1)
	assert.Equal(t, float32(50), info.Width)
	assert.Equal(t, float32(40), info.Height)
	assert.InDelta(t, 75, info.WorldX, 1e-4)
	assert.InDelta(t, -20, info.WorldY, 1e-4)

	hit, ok := w.HitTest(math32.Vec2(80, -20))
	assert.True(t, ok)
	assert.Equal(t, kids[1], hit)
	hit, _ = w.HitTest(math32.Vec2(10, -10))
	assert.Equal(t, kids[0], hit)
	assert.Equal(t, []ecs.Entity{kids[0], root}, w.HitTestAll(math32.Vec2(10, -10)))
	_, ok = w.HitTest(math32.Vec2(500, 500))
	assert.False(t, ok)

	w.SetHidden(kids[1], true)
	require.NoError(t, w.Frame(context.Background(), 1.0/60))
	assert.True(t, w.IsHidden(kids[1]))
	hit, _ = w.HitTest(math32.Vec2(80, -20))
	assert.Equal(t, root, hit)

	w.SetHidden(kids[1], false)
	require.NoError(t, w.Frame(context.Background(), 1.0/60))
	hit, _ = w.HitTest(math32.Vec2(80, -20))
	assert.Equal(t, kids[1], hit)

	b, ok := w.WorldBounds(kids[1])
	require.True(t, ok)
	assert.InDelta(t, 50, b.Min.X, 1e-4)
	assert.InDelta(t, -40, b.Min.Y, 1e-4)
	assert.InDelta(t, 100, b.Max.X, 1e-4)
	assert.InDelta(t, 0, b.Max.Y, 1e-4)
}

func TestViewportResize(t *testing.T) {
	w := New(Options{Width: 800, Height: 600, Origin: layout.OriginCenter})
	defer w.Close()
	root, err := w.Spawn(ecs.Nil, Element(&layout.View{}))
	require.NoError(t, err)
	require.NoError(t, w.Frame(context.Background(), 0))
	info := w.Info(root, 0)
	assert.Equal(t, float32(800), info.Width)
	assert.InDelta(t, 0, info.WorldX, 1e-4)

	w.SetViewport(300, 200)
	require.NoError(t, w.Frame(context.Background(), 0))
	info = w.Info(root, 0)
	assert.Equal(t, float32(300), info.Width)
	assert.Equal(t, float32(200), info.Height)
}

func TestLabelAutoSize(t *testing.T) {
	w := New(Options{Width: 800, Height: 600})
	defer w.Close()
	s := layout.NewStack(styles.Vertical, 2)
	s.Hor, s.Ver = styles.AlignStart, styles.AlignStart
	root, err := w.Spawn(ecs.Nil, Element(s))
	require.NoError(t, err)
	v := &layout.View{UseRectSize: true, Hor: styles.AlignStart, Ver: styles.AlignStart}
	label, err := w.Spawn(root, Element(v), Text(text.NewLabel("hello", 0)))
	require.NoError(t, err)

	require.NoError(t, w.Frame(context.Background(), 0))
	assert.Equal(t, float32(35), w.Info(label, 1).Width)
	assert.Equal(t, float32(35), w.Info(root, 0).Width)
	assert.Equal(t, "hello", w.Info(label, 1).Text)

	w.Labels.Update(label, func(l *text.Label) { l.Text = "hello\nworld!" })
	require.NoError(t, w.Frame(context.Background(), 0))
	assert.Equal(t, float32(42), w.Info(root, 0).Width)
	assert.Equal(t, float32(26), w.Info(root, 0).Height)
}

func TestUpdaters(t *testing.T) {
	w, root, _ := gridScene(t)
	frames, seconds := 0, 0
	w.EveryFrames(root, 2, func(w *World, e ecs.Entity) {
		assert.Equal(t, root, e)
		frames++
	})
	w.EverySeconds(root, 0.5, func(w *World, e ecs.Entity) { seconds++ })
	for range 4 {
		require.NoError(t, w.Frame(context.Background(), 0.25))
	}
	assert.Equal(t, 2, frames)
	assert.Equal(t, 2, seconds)
}

func TestClone(t *testing.T) {
	w, root, kids := gridScene(t)
	cl, err := w.Clone(root, ecs.Nil)
	require.NoError(t, err)
	assert.Equal(t, []ecs.Entity{root, cl}, w.Tree.Roots())
	require.Len(t, w.Tree.Children(cl), 2)
	ck := w.Tree.Children(cl)[1]
	assert.Equal(t, "right", w.Name(ck))
	cell, _ := w.Layout.Cells.Get(ck)
	assert.Equal(t, 1, cell.Col)

	layout.Edit(w.Layout.Elements, cl, func(g *layout.Grid) { g.Cols[0] = layout.Const(20) })
	require.NoError(t, w.Frame(context.Background(), 0))
	assert.Equal(t, float32(50), w.Info(kids[0], 1).Width)
	assert.Equal(t, float32(20), w.Info(w.Tree.Children(cl)[0], 1).Width)

	_, err = w.Clone(w.Entities.NewEntity(), ecs.Nil)
	assert.Error(t, err)
}

func TestSnapshotAndFind(t *testing.T) {
	w, root, kids := gridScene(t)
	require.NoError(t, w.Frame(context.Background(), 0))
	snap := w.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "grid", snap[0].Name)
	assert.Equal(t, "Grid", snap[0].Kind)
	assert.Equal(t, root.String(), snap[1].Parent)
	assert.Equal(t, 1, snap[2].Depth)

	e, ok := w.Find("right")
	assert.True(t, ok)
	assert.Equal(t, kids[1], e)
	_, ok = w.Find("nothing")
	assert.False(t, ok)

	require.NoError(t, w.Reparent(kids[1], kids[0]))
	assert.Equal(t, []ecs.Entity{kids[1]}, w.Tree.Children(kids[0]))
	w.Remove(kids[0], true)
	assert.False(t, w.Entities.Alive(kids[1]))
}

func TestMissingComponentFrame(t *testing.T) {
	w, _, kids := gridScene(t)
	w.Transforms.Remove(kids[0])
	err := w.Frame(context.Background(), 0)
	assert.ErrorIs(t, err, layout.ErrMissingComponent)
	assert.Equal(t, float32(50), w.Info(kids[1], 1).Width)
	assert.Empty(t, transform.Check(w.Tree, w.Transforms, 1e-4))
}
