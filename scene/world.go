// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene wires the entity world, the scene graph and the frame
// systems into one [World]: layout, text auto-size, hide propagation
// and transform propagation run in that dependency order once per
// [World.Frame], and hit testing reads their results.
package scene

import (
	"context"

	"cogentcore.org/scene2d/base/errors"
	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/frame"
	"cogentcore.org/scene2d/geom"
	"cogentcore.org/scene2d/layout"
	"cogentcore.org/scene2d/text"
	"cogentcore.org/scene2d/transform"
	"cogentcore.org/scene2d/tree"
)

// Options configure a new [World].
type Options struct {

	// Measurer measures label text. Nil uses the basic bitmap face.
	Measurer text.Measurer

	// Workers is the number of systems run at once. Zero means GOMAXPROCS.
	Workers int

	// Origin places layout roots relative to the scene origin.
	Origin layout.Origins

	// Width and Height are the initial viewport size.
	Width, Height float32
}

// World is a scene: entities, their components, the graph joining
// them and the systems keeping derived state current.
type World struct {
	Entities *ecs.World
	Tree     *tree.Tree

	Rects      *ecs.Store[geom.Rect2D]
	Transforms *ecs.Store[transform.Transform]
	Labels     *ecs.Store[text.Label]
	Names      *ecs.Store[string]
	Hidden     *ecs.Store[transform.Hidden]
	Propagated *ecs.Store[transform.HiddenPropagate]
	Updates    *ecs.Store[Updates]
	Layout     layout.Stores

	engine     *layout.Engine
	propagator *transform.Propagator
	hide       *transform.HidePropagator
	autoSize   *text.AutoSize
	scheduler  *frame.Scheduler

	frames    uint64
	layoutErr error
}

// New returns an empty world.
func New(opts Options) *World {
	w := &World{Entities: ecs.NewWorld()}
	w.Tree = tree.New(w.Entities)
	w.Rects = ecs.NewStore[geom.Rect2D](w.Entities, "Rect2D")
	w.Transforms = ecs.NewStore[transform.Transform](w.Entities, "Transform")
	w.Labels = ecs.NewStore[text.Label](w.Entities, "Label")
	w.Names = ecs.NewStore[string](w.Entities, "Name")
	w.Hidden = ecs.NewStore[transform.Hidden](w.Entities, "Hidden")
	w.Propagated = ecs.NewStore[transform.HiddenPropagate](w.Entities, "HiddenPropagate")
	w.Updates = ecs.NewStore[Updates](w.Entities, "Updates")
	w.Layout = layout.NewStores(w.Entities, w.Rects, w.Transforms)

	m := opts.Measurer
	if m == nil {
		m = text.NewBasic()
	}
	w.engine = layout.NewEngine(w.Tree, w.Layout)
	w.engine.SetRootOrigin(opts.Origin)
	w.engine.SetViewport(opts.Width, opts.Height)
	w.propagator = transform.NewPropagator(w.Tree, w.Transforms)
	w.hide = transform.NewHidePropagator(w.Tree, w.Hidden, w.Propagated)
	w.autoSize = text.NewAutoSize(w.Labels, w.Rects, w.Layout.Elements, m)

	w.scheduler = frame.NewScheduler()
	w.scheduler.Workers = opts.Workers
	systems := []frame.System{
		{
			Name:   "autosize",
			Reads:  []string{"Label"},
			Writes: []string{"Rect2D", "LayoutElement"},
			Run: func(ctx context.Context) error {
				w.autoSize.Run()
				return nil
			},
		},
		{
			Name:   "layout",
			Reads:  []string{"LayoutElement", "GridCell", "ScreenScaler", "TreeNode"},
			Writes: []string{"Rect2D", "Transform"},
			After:  []string{"autosize"},
			Run: func(ctx context.Context) error {
				w.layoutErr = w.engine.Run()
				return nil
			},
		},
		{
			Name:   "hide",
			Reads:  []string{"Hidden", "TreeNode"},
			Writes: []string{"HiddenPropagate"},
			Run: func(ctx context.Context) error {
				w.hide.Run()
				return nil
			},
		},
		{
			Name:   "transform",
			Reads:  []string{"TreeNode"},
			Writes: []string{"Transform"},
			After:  []string{"layout"},
			Run: func(ctx context.Context) error {
				w.propagator.Run()
				return nil
			},
		},
	}
	for _, sys := range systems {
		errors.Must(w.scheduler.Add(sys))
	}
	return w
}

// Close unregisters the systems from the event logs.
func (w *World) Close() {
	w.engine.Close()
	w.propagator.Close()
	w.hide.Close()
	w.autoSize.Close()
}

// Engine returns the layout engine.
func (w *World) Engine() *layout.Engine {
	return w.engine
}

// Scheduler returns the frame scheduler, to which more systems may be added.
func (w *World) Scheduler() *frame.Scheduler {
	return w.scheduler
}

// Frames returns the number of frames run.
func (w *World) Frames() uint64 {
	return w.frames
}

// SetViewport sets the viewport size. Layout trees are laid out again
// on the next frame if it changed.
func (w *World) SetViewport(width, height float32) {
	w.engine.SetViewport(width, height)
}

// Frame advances the scene by dt seconds: it fires due update
// callbacks, then runs the systems. Layout failures are scoped to the
// failing branches and returned after the frame completes.
func (w *World) Frame(ctx context.Context, dt float32) error {
	w.frames++
	w.runUpdates(dt)
	err := w.scheduler.Run(ctx)
	return errors.Join(err, w.layoutErr)
}

// IsHidden returns whether e is hidden by itself or by an ancestor,
// as of the last frame.
func (w *World) IsHidden(e ecs.Entity) bool {
	return w.hide.IsHidden(e)
}

// Add attaches e to the graph under parent, or as a root if parent is [ecs.Nil].
func (w *World) Add(e, parent ecs.Entity) error {
	_, err := w.Tree.Add(e, parent)
	return err
}

// Reparent moves e under a new parent, keeping its children.
func (w *World) Reparent(e, parent ecs.Entity) error {
	_, err := w.Tree.Update(e, parent)
	return err
}

// Remove detaches e from the graph, destroying its subtree if destroy is set.
func (w *World) Remove(e ecs.Entity, destroy bool) {
	w.Tree.Remove(e, destroy)
}

// Name returns the name of e, or its id if it has none.
func (w *World) Name(e ecs.Entity) string {
	if n, ok := w.Names.Get(e); ok && n != "" {
		return n
	}
	return e.String()
}

// Find returns the first entity with the given name in breadth-first order.
func (w *World) Find(name string) (ecs.Entity, bool) {
	found := ecs.Nil
	for _, r := range w.Tree.Roots() {
		w.Tree.WalkDownBreadth(r, func(e ecs.Entity, depth int) bool {
			if !found.IsNil() {
				return tree.Break
			}
			if n, ok := w.Names.Get(e); ok && n == name {
				found = e
				return tree.Break
			}
			return tree.Continue
		})
	}
	return found, !found.IsNil()
}
