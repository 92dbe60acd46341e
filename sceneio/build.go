// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneio

import (
	"fmt"

	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/geom"
	"cogentcore.org/scene2d/layout"
	"cogentcore.org/scene2d/math32"
	"cogentcore.org/scene2d/scene"
	"cogentcore.org/scene2d/styles"
	"cogentcore.org/scene2d/text"
)

// Build spawns the nodes of the document into the world and returns
// the root entities. A viewport in the document replaces the world's.
func Build(w *scene.World, doc *Document) ([]ecs.Entity, error) {
	if doc.Viewport.Width > 0 && doc.Viewport.Height > 0 {
		w.SetViewport(doc.Viewport.Width, doc.Viewport.Height)
	}
	var roots []ecs.Entity
	for i := range doc.Nodes {
		e, err := build(w, ecs.Nil, &doc.Nodes[i])
		if err != nil {
			return roots, err
		}
		roots = append(roots, e)
	}
	return roots, nil
}

func build(w *scene.World, parent ecs.Entity, n *Node) (ecs.Entity, error) {
	comps := []scene.Component{}
	if n.Name != "" {
		comps = append(comps, scene.Named(n.Name))
	}
	if len(n.Anchor) == 2 {
		comps = append(comps, scene.Anchor(n.Anchor[0], n.Anchor[1]))
	}
	el, err := n.Element()
	if err != nil {
		return ecs.Nil, err
	}
	if el != nil {
		comps = append(comps, scene.Element(el))
	} else if len(n.Size) == 2 {
		comps = append(comps, func(w *scene.World, e ecs.Entity) {
			w.Rects.Update(e, func(r *geom.Rect2D) { r.Width, r.Height = n.Size[0], n.Size[1] })
		})
	}
	if el == nil && len(n.Pos) == 2 {
		comps = append(comps, scene.At(n.Pos[0], n.Pos[1], 0))
	}
	if n.Cell != nil {
		comps = append(comps, scene.Cell(*n.Cell))
	}
	if n.Text != "" {
		comps = append(comps, scene.Text(text.NewLabel(n.Text, n.FontSize)))
	}
	if n.Hidden {
		comps = append(comps, scene.Hide())
	}
	if n.Scale != nil {
		comps = append(comps, scene.Scaler(layout.ScreenScaler{Mode: n.Scale.Mode, Design: n.Scale.Design}))
	}
	e, err := w.Spawn(parent, comps...)
	if err != nil {
		return ecs.Nil, fmt.Errorf("sceneio: %s: %w", n.Name, err)
	}
	for i := range n.Children {
		if _, err := build(w, e, &n.Children[i]); err != nil {
			return e, err
		}
	}
	return e, nil
}

// Element returns the layout element described by the node, or nil if
// the node takes no part in layout.
func (n *Node) Element() (layout.Element, error) {
	v := layout.View{
		Margin:      n.Margin,
		Padding:     n.Padding,
		Hor:         n.Hor,
		Ver:         n.Ver,
		UseRectSize: n.UseRectSize || (n.Text != "" && len(n.Size) == 0),
		ViewType:    n.ViewType,
	}
	if len(n.Size) == 2 {
		v.Size = styles.XY[float32]{X: n.Size[0], Y: n.Size[1]}
	}
	if len(n.Pos) == 2 {
		v.Pos = math32.Vec2(n.Pos[0], n.Pos[1])
	}
	switch n.Kind {
	case "":
		return nil, nil
	case "view":
		return &v, nil
	case "content":
		return &layout.ContentView{View: v}, nil
	case "stack":
		return &layout.Stack{View: v, Orientation: n.Orientation, Spacing: n.Spacing, OverHide: n.OverHide}, nil
	case "grid":
		return &layout.Grid{View: v, Rows: n.Rows, Cols: n.Cols}, nil
	}
	return nil, fmt.Errorf("sceneio: %s: unknown kind %q", n.Name, n.Kind)
}
