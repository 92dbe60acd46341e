// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/tree"
)

// NodeInfo is the laid out state of one entity, as seen by inspectors.
type NodeInfo struct {
	Entity ecs.Entity `json:"-"`

	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Parent string `json:"parent,omitempty"`
	Depth  int    `json:"depth"`
	Kind   string `json:"kind,omitempty"`
	Text   string `json:"text,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`

	// Width and Height are the rectangle size.
	Width  float32 `json:"width"`
	Height float32 `json:"height"`

	// X and Y are the local position.
	X float32 `json:"x"`
	Y float32 `json:"y"`

	// WorldX and WorldY are the position in the scene.
	WorldX float32 `json:"worldX"`
	WorldY float32 `json:"worldY"`
}

// Snapshot returns the state of every entity in drawing order.
func (w *World) Snapshot() []NodeInfo {
	var out []NodeInfo
	for _, r := range w.Tree.Roots() {
		w.Tree.WalkDownBreadth(r, func(e ecs.Entity, depth int) bool {
			out = append(out, w.Info(e, w.Tree.Depth(e)))
			return tree.Continue
		})
	}
	return out
}

// Info returns the state of one entity.
func (w *World) Info(e ecs.Entity, depth int) NodeInfo {
	ni := NodeInfo{Entity: e, ID: e.String(), Depth: depth, Hidden: w.IsHidden(e)}
	if n, ok := w.Names.Get(e); ok {
		ni.Name = n
	}
	if p, ok := w.Tree.Parent(e); ok {
		ni.Parent = p.String()
	}
	if el, ok := w.Layout.Elements.Get(e); ok && el != nil {
		ni.Kind = el.Kind().String()
	}
	if l, ok := w.Labels.Get(e); ok {
		ni.Text = l.Text
	}
	if r, ok := w.Rects.Get(e); ok {
		ni.Width, ni.Height = r.Width, r.Height
	}
	if t, ok := w.Transforms.Get(e); ok {
		ni.X, ni.Y = t.Position.X, t.Position.Y
		g := t.GlobalPosition()
		ni.WorldX, ni.WorldY = g.X, g.Y
	}
	return ni
}
