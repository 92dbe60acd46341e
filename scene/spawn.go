// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/geom"
	"cogentcore.org/scene2d/layout"
	"cogentcore.org/scene2d/math32"
	"cogentcore.org/scene2d/text"
	"cogentcore.org/scene2d/transform"
)

// Component attaches one component to a newly spawned entity.
type Component func(w *World, e ecs.Entity)

// Spawn creates an entity with a rectangle and a transform, applies the
// given components and attaches it under parent ([ecs.Nil] for a root).
func (w *World) Spawn(parent ecs.Entity, comps ...Component) (ecs.Entity, error) {
	e := w.Entities.NewEntity()
	w.Rects.Set(e, geom.NewRect2D(0, 0))
	w.Transforms.Set(e, transform.New())
	for _, c := range comps {
		c(w, e)
	}
	if _, err := w.Tree.Add(e, parent); err != nil {
		w.Entities.Destroy(e)
		return ecs.Nil, err
	}
	return e, nil
}

// Named sets the name of the entity.
func Named(name string) Component {
	return func(w *World, e ecs.Entity) { w.Names.Set(e, name) }
}

// Rect sets the rectangle of the entity.
func Rect(r geom.Rect2D) Component {
	return func(w *World, e ecs.Entity) { w.Rects.Set(e, r) }
}

// Anchor sets the anchor of the entity's rectangle.
func Anchor(x, y float32) Component {
	return func(w *World, e ecs.Entity) {
		w.Rects.Update(e, func(r *geom.Rect2D) { r.Anchor = math32.Vec2(x, y) })
	}
}

// At sets the local position of the entity.
func At(x, y, z float32) Component {
	return func(w *World, e ecs.Entity) {
		w.Transforms.Update(e, func(t *transform.Transform) { t.Position = math32.Vec3(x, y, z) })
	}
}

// Transform sets the local transform of the entity.
func Transform(t transform.Transform) Component {
	return func(w *World, e ecs.Entity) { w.Transforms.Set(e, t) }
}

// Element sets the layout element of the entity.
func Element(el layout.Element) Component {
	return func(w *World, e ecs.Entity) { w.Layout.Elements.Set(e, el) }
}

// Cell places the entity in its parent grid.
func Cell(c layout.GridCell) Component {
	return func(w *World, e ecs.Entity) { w.Layout.Cells.Set(e, c) }
}

// Scaler scales the entity's layout tree to the viewport.
func Scaler(s layout.ScreenScaler) Component {
	return func(w *World, e ecs.Entity) { w.Layout.Scalers.Set(e, s) }
}

// Text sets a label, auto-sizing the entity's rectangle to it.
func Text(l text.Label) Component {
	return func(w *World, e ecs.Entity) { w.Labels.Set(e, l) }
}

// Hide hides the entity and its subtree.
func Hide() Component {
	return func(w *World, e ecs.Entity) { w.Hidden.Set(e, transform.Hidden{}) }
}

// SetHidden shows or hides e and its subtree from the next frame on.
func (w *World) SetHidden(e ecs.Entity, hidden bool) {
	if hidden {
		if !w.Hidden.Has(e) {
			w.Hidden.Set(e, transform.Hidden{})
		}
		return
	}
	w.Hidden.Remove(e)
}
