// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"log/slog"
	"slices"

	"cogentcore.org/scene2d/base/errors"
	"cogentcore.org/scene2d/base/eventlog"
	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/geom"
	"cogentcore.org/scene2d/math32"
	"cogentcore.org/scene2d/transform"
	"cogentcore.org/scene2d/tree"
)

// Stores are the component stores the [Engine] reads and writes.
type Stores struct {
	Rects      *ecs.Store[geom.Rect2D]
	Transforms *ecs.Store[transform.Transform]
	Elements   *ecs.Store[Element]
	Cells      *ecs.Store[GridCell]
	Scalers    *ecs.Store[ScreenScaler]
}

// NewStores registers the layout stores in the world. Rects and
// transforms are shared with other systems and passed in.
func NewStores(w *ecs.World, rects *ecs.Store[geom.Rect2D], transforms *ecs.Store[transform.Transform]) Stores {
	return Stores{
		Rects:      rects,
		Transforms: transforms,
		Elements:   ecs.NewStore[Element](w, "LayoutElement"),
		Cells:      ecs.NewStore[GridCell](w, "GridCell"),
		Scalers:    ecs.NewStore[ScreenScaler](w, "ScreenScaler"),
	}
}

// Origins select where a layout root's slot is placed in its parent's space.
type Origins int32

const (
	// OriginTopLeft puts the top-left corner of the root slot at (0, 0).
	OriginTopLeft Origins = iota

	// OriginCenter centers the root slot on (0, 0).
	OriginCenter
)

// Engine runs the measure and arrange passes over the layout trees
// invalidated by element changes, graph changes and viewport resizes.
//
// A layout root is an element whose parent takes no part in layout.
// Any change below a layout root invalidates the whole layout tree.
type Engine struct {
	tree *tree.Tree
	Stores

	viewport math32.Vector2
	origin   Origins

	elementsReader eventlog.ReaderID
	cellsReader    eventlog.ReaderID
	scalersReader  eventlog.ReaderID
	treeReader     eventlog.ReaderID

	dirty map[ecs.Entity]struct{}
}

// NewEngine returns an engine over the given graph and stores,
// seeing changes made from now on.
func NewEngine(t *tree.Tree, s Stores) *Engine {
	return &Engine{
		tree:           t,
		Stores:         s,
		elementsReader: s.Elements.Events().Register(),
		cellsReader:    s.Cells.Events().Register(),
		scalersReader:  s.Scalers.Events().Register(),
		treeReader:     t.Events().Register(),
		dirty:          map[ecs.Entity]struct{}{},
	}
}

// Close unregisters the engine from the event logs.
func (en *Engine) Close() {
	en.Elements.Events().Unregister(en.elementsReader)
	en.Cells.Events().Unregister(en.cellsReader)
	en.Scalers.Events().Unregister(en.scalersReader)
	en.tree.Events().Unregister(en.treeReader)
}

// Viewport returns the current viewport size.
func (en *Engine) Viewport() math32.Vector2 {
	return en.viewport
}

// SetViewport sets the viewport size, invalidating every layout tree
// if it changed.
func (en *Engine) SetViewport(w, h float32) {
	vp := math32.Vec2(w, h)
	if vp == en.viewport {
		return
	}
	en.viewport = vp
	for _, r := range en.tree.Roots() {
		en.Invalidate(r)
	}
}

// RootOrigin returns where layout roots are placed.
func (en *Engine) RootOrigin() Origins {
	return en.origin
}

// SetRootOrigin sets where layout roots are placed and invalidates
// every layout tree if it changed.
func (en *Engine) SetRootOrigin(o Origins) {
	if o == en.origin {
		return
	}
	en.origin = o
	for _, r := range en.tree.Roots() {
		en.Invalidate(r)
	}
}

// Invalidate marks the layout tree containing e for a full pass.
// If e takes no part in layout, the layout trees below it are marked.
func (en *Engine) Invalidate(e ecs.Entity) {
	if e.IsNil() {
		return
	}
	if en.Elements.Has(e) {
		en.dirty[en.layoutRoot(e)] = struct{}{}
		return
	}
	en.tree.WalkDown(e, func(c ecs.Entity) bool {
		if en.Elements.Has(c) {
			en.dirty[c] = struct{}{}
			return tree.Break
		}
		return tree.Continue
	})
}

// layoutRoot returns the outermost ancestor of e reached through
// participating parents.
func (en *Engine) layoutRoot(e ecs.Entity) ecs.Entity {
	root := e
	en.tree.WalkUp(e, func(c ecs.Entity) bool {
		if !en.Elements.Has(c) {
			return tree.Break
		}
		root = c
		return tree.Continue
	})
	return root
}

// Dirty reads the pending changes and returns the layout roots waiting
// for a pass, in entity order.
func (en *Engine) Dirty() []ecs.Entity {
	en.drain()
	return en.dirtyRoots()
}

func (en *Engine) dirtyRoots() []ecs.Entity {
	ds := make([]ecs.Entity, 0, len(en.dirty))
	for e := range en.dirty {
		ds = append(ds, e)
	}
	slices.SortFunc(ds, ecs.Compare)
	return ds
}

// drain reads pending change events into the dirty set.
func (en *Engine) drain() {
	for _, ev := range en.Elements.Events().Read(en.elementsReader) {
		if ev.Kind == ecs.Removed {
			if p, ok := en.tree.Parent(ev.Entity); ok {
				en.Invalidate(p)
			}
			delete(en.dirty, ev.Entity)
			continue
		}
		en.Invalidate(ev.Entity)
	}
	for _, ev := range en.Cells.Events().Read(en.cellsReader) {
		if p, ok := en.tree.Parent(ev.Entity); ok {
			en.Invalidate(p)
		}
	}
	for _, ev := range en.Scalers.Events().Read(en.scalersReader) {
		en.Invalidate(ev.Entity)
	}
	for _, ev := range en.tree.Events().Read(en.treeReader) {
		switch ev.Kind {
		case tree.Add:
			en.Invalidate(ev.Entity)
		case tree.Remove:
			en.Invalidate(ev.Parent)
		case tree.Update:
			en.Invalidate(ev.OldParent)
			en.Invalidate(ev.Parent)
			en.Invalidate(ev.Entity)
		}
	}
}

// Run reads the pending changes and lays out every invalidated layout
// tree. Failures are logged and returned joined; a failing branch is
// left out while the rest of its tree is still laid out.
func (en *Engine) Run() error {
	en.drain()
	var errs []error
	for _, e := range en.dirtyRoots() {
		delete(en.dirty, e)
		if !en.Elements.Has(e) || !en.tree.Contains(e) {
			continue
		}
		if err := en.Layout(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Layout measures and arranges the subtree at e in the slot given by
// its size request, regardless of invalidation.
func (en *Engine) Layout(e ecs.Entity) error {
	p := &pass{
		tree:       en.tree,
		rects:      en.Rects,
		transforms: en.Transforms,
		elements:   en.Elements,
		cells:      en.Cells,
	}
	if sc, ok := en.Scalers.Get(e); ok {
		s, _ := sc.Apply(en.viewport)
		en.applyScale(e, s)
	}
	slot := en.SizeRequest(e)
	el, _ := en.Elements.Get(e)
	v := base(el)
	if v == nil {
		return errors.Log(&MissingComponentError{Entity: e, Component: "Element"})
	}
	if b := p.measure(e, slot, v.Request()); b != nil {
		p.arrange(b, en.slotOrigin(e, slot), slot)
	}
	if len(p.errs) > 0 {
		return errors.Log(errors.Join(p.errs...))
	}
	slog.Debug("layout", "root", e, "writes", p.writes)
	return nil
}

func (en *Engine) applyScale(e ecs.Entity, s float32) {
	t, ok := en.Transforms.Get(e)
	if !ok || (t.Scale.X == s && t.Scale.Y == s && t.Scale.Z == 1) {
		return
	}
	en.Transforms.Update(e, func(t *transform.Transform) {
		t.Scale = math32.Vec3(s, s, 1)
	})
}

// slotOrigin returns the top-left corner of the slot e is laid out in:
// inside the padding of its parent rectangle when it has one, else at
// the root origin.
func (en *Engine) slotOrigin(e ecs.Entity, slot math32.Vector2) math32.Vector2 {
	if p, ok := en.tree.Parent(e); ok {
		if r, ok := en.Rects.Get(p); ok {
			origin := math32.Vec2(r.Left(), r.Top())
			if el, ok := en.Elements.Get(p); ok && base(el) != nil {
				pad := el.Base().Padding
				origin = origin.Add(math32.Vec2(pad.Left, -pad.Top))
			}
			return origin
		}
	}
	if en.origin == OriginCenter {
		return math32.Vec2(-slot.X/2, slot.Y/2)
	}
	return math32.Vector2{}
}

// SizeRequest returns the size available to e: its requested size plus
// margins on axes where it has one, else the request of its parent
// inside the parent's padding. At the top of the graph it is the
// viewport, or the design size of a [ScreenScaler].
func (en *Engine) SizeRequest(e ecs.Entity) math32.Vector2 {
	var v *View
	if el, ok := en.Elements.Get(e); ok {
		v = base(el)
	}
	var req math32.Vector2
	need := false
	for d := math32.X; d <= math32.Y; d++ {
		if v != nil && v.Size.Dim(d) > 0 {
			req.SetDim(d, v.Size.Dim(d)+v.Margin.Sum(d))
		} else {
			need = true
		}
	}
	if !need {
		return req
	}
	var avail math32.Vector2
	if sc, ok := en.Scalers.Get(e); ok {
		_, avail = sc.Apply(en.viewport)
	} else if p, ok := en.tree.Parent(e); ok {
		avail = en.SizeRequest(p)
		if el, ok := en.Elements.Get(p); ok && base(el) != nil {
			pad := el.Base().Padding
			avail = math32.Vec2(math32.NonNeg(avail.X-pad.Horizontal()), math32.NonNeg(avail.Y-pad.Vertical()))
		}
	} else {
		avail = en.viewport
	}
	for d := math32.X; d <= math32.Y; d++ {
		if v == nil || v.Size.Dim(d) <= 0 {
			req.SetDim(d, avail.Dim(d))
		}
	}
	return req
}
