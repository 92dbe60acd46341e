// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"

	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/math32"
	"cogentcore.org/scene2d/tree"
)

// DrawOrder returns every entity in the graph in drawing order: roots
// in order, each subtree breadth-first. Later entities draw on top.
func (w *World) DrawOrder() []ecs.Entity {
	var order []ecs.Entity
	for _, r := range w.Tree.Roots() {
		w.Tree.WalkDownBreadth(r, func(e ecs.Entity, depth int) bool {
			order = append(order, e)
			return tree.Continue
		})
	}
	return order
}

// HitTest returns the topmost visible entity whose rectangle contains
// the point, using the world matrices of the last frame.
func (w *World) HitTest(pt math32.Vector2) (ecs.Entity, bool) {
	hits := w.HitTestAll(pt)
	if len(hits) == 0 {
		return ecs.Nil, false
	}
	return hits[0], true
}

// HitTestAll returns every visible entity whose rectangle contains the
// point, topmost first.
func (w *World) HitTestAll(pt math32.Vector2) []ecs.Entity {
	var hits []ecs.Entity
	order := w.DrawOrder()
	for _, e := range slices.Backward(order) {
		if w.IsHidden(e) {
			continue
		}
		r, ok := w.Rects.Get(e)
		if !ok {
			continue
		}
		t, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		if r.Test(&t.GlobalMatrix, pt) {
			hits = append(hits, e)
		}
	}
	return hits
}

// WorldBounds returns the axis-aligned box enclosing the entity's
// rectangle in scene coordinates.
func (w *World) WorldBounds(e ecs.Entity) (math32.Box2, bool) {
	r, ok := w.Rects.Get(e)
	if !ok {
		return math32.Box2{}, false
	}
	t, ok := w.Transforms.Get(e)
	if !ok {
		return math32.Box2{}, false
	}
	b := math32.B2Empty()
	c := r.CornerPoints()
	for _, x := range c[:2] {
		for _, y := range c[2:] {
			b = b.ExpandByPoint(t.GlobalMatrix.MulVector3AsPoint(math32.Vec3(x, y, 0)).XY())
		}
	}
	return b, true
}
