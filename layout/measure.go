// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/geom"
	"cogentcore.org/scene2d/math32"
	"cogentcore.org/scene2d/styles"
	"cogentcore.org/scene2d/transform"
	"cogentcore.org/scene2d/tree"
)

// box is the result of measuring one element: its final size and the
// measured boxes of its children, handed from measure to arrange.
type box struct {
	e  ecs.Entity
	el Element

	// size is the size of the element's rectangle.
	size math32.Vector2

	// cols and rows are the resolved track sizes of a [Grid].
	cols, rows []float32

	// cell is the clamped placement of a child of a [Grid],
	// as half-open track ranges.
	col0, col1, row0, row1 int

	kids []*box
}

// pass is one measure/arrange run over a subtree.
type pass struct {
	tree       *tree.Tree
	rects      *ecs.Store[geom.Rect2D]
	transforms *ecs.Store[transform.Transform]
	elements   *ecs.Store[Element]
	cells      *ecs.Store[GridCell]

	// errs are the failures of the pass. Failing branches are left
	// out of the layout.
	errs []error

	// missing holds the entities already reported in errs.
	missing map[ecs.Entity]bool

	// writes counts the rectangles and positions changed by arrange.
	writes int
}

func (p *pass) fail(err error) {
	p.errs = append(p.errs, err)
}

// fails records that e lacks a component, once per entity.
func (p *pass) fails(e ecs.Entity, component string) {
	if p.missing[e] {
		return
	}
	if p.missing == nil {
		p.missing = map[ecs.Entity]bool{}
	}
	p.missing[e] = true
	p.fail(&MissingComponentError{Entity: e, Component: component})
}

// check returns whether e carries the components layout writes to.
func (p *pass) check(e ecs.Entity) bool {
	switch {
	case !p.rects.Has(e):
		p.fails(e, "Rect2D")
		return false
	case !p.transforms.Has(e):
		p.fails(e, "Transform")
		return false
	}
	return true
}

// measure measures e for the given slot and size request. It returns
// nil if e or its element is missing a required component.
func (p *pass) measure(e ecs.Entity, slot, req math32.Vector2) *box {
	el, _, ok := p.element(e)
	if !ok || !p.check(e) {
		return nil
	}
	return el.measure(p, e, slot, req)
}

// element returns the element of e and its view record. A missing,
// nil or nil pointer element is recorded as a [MissingComponentError].
func (p *pass) element(e ecs.Entity) (Element, *View, bool) {
	el, _ := p.elements.Get(e)
	v := base(el)
	if v == nil {
		p.fails(e, "Element")
		return nil, nil, false
	}
	return el, v, true
}

// children returns the children of e that take part in layout.
func (p *pass) children(e ecs.Entity) []ecs.Entity {
	var kids []ecs.Entity
	for _, c := range p.tree.Children(e) {
		if p.elements.Has(c) {
			kids = append(kids, c)
		}
	}
	return kids
}

// contentSize returns the size of v along one axis before its content
// is considered: the slot minus margins when filling a bounded slot,
// the request if positive, the current rectangle when sized
// externally, or zero.
func (p *pass) contentSize(e ecs.Entity, v *View, d math32.Dims, slot, req math32.Vector2) float32 {
	switch {
	case v.Align(d) == styles.AlignFill && slot.Dim(d) > 0:
		return math32.NonNeg(slot.Dim(d) - v.Margin.Sum(d))
	case req.Dim(d) > 0:
		return req.Dim(d)
	case v.UseRectSize && p.leaf(e):
		if r, ok := p.rects.Get(e); ok {
			return r.Size().Dim(d)
		}
	}
	return 0
}

// leaf returns whether the element of e is a plain [View].
func (p *pass) leaf(e ecs.Entity) bool {
	el, ok := p.elements.Get(e)
	return ok && el.Kind() == KindView
}

func (p *pass) ownSize(e ecs.Entity, v *View, slot, req math32.Vector2) math32.Vector2 {
	return math32.Vec2(p.contentSize(e, v, math32.X, slot, req), p.contentSize(e, v, math32.Y, slot, req))
}

// inner returns the size inside the padding of a box of the given size.
func inner(v *View, size math32.Vector2) math32.Vector2 {
	return math32.Vec2(math32.NonNeg(size.X-v.Padding.Horizontal()), math32.NonNeg(size.Y-v.Padding.Vertical()))
}

// measureKids measures every child of e against the same slot.
func (p *pass) measureKids(e ecs.Entity, slot math32.Vector2) []*box {
	var kids []*box
	for _, c := range p.children(e) {
		_, kv, ok := p.element(c)
		if !ok {
			continue
		}
		if kb := p.measure(c, slot, kv.Request()); kb != nil {
			kids = append(kids, kb)
		}
	}
	return kids
}

func (v *View) measure(p *pass, e ecs.Entity, slot, req math32.Vector2) *box {
	b := &box{e: e, el: v, size: p.ownSize(e, v, slot, req)}
	b.kids = p.measureKids(e, inner(v, b.size))
	return b
}

func (v *View) arrangeChildren(p *pass, b *box) {
	origin := p.innerOrigin(b)
	slot := inner(v, b.size)
	for _, kb := range b.kids {
		p.arrange(kb, origin, slot)
	}
}

func (c *ContentView) measure(p *pass, e ecs.Entity, slot, req math32.Vector2) *box {
	v := &c.View
	b := &box{e: e, el: c, size: p.ownSize(e, v, slot, req)}
	kids := p.measureKids(e, inner(v, b.size))
	grow := false
	for d := math32.X; d <= math32.Y; d++ {
		if !v.isAuto(d, slot, req) {
			continue
		}
		var ext float32
		for _, kb := range kids {
			kv := kb.el.Base()
			if kv.ViewType == Absolute {
				continue
			}
			ext = max(ext, kb.size.Dim(d)+kv.Margin.Sum(d))
		}
		size := max(b.size.Dim(d), ext+v.Padding.Sum(d))
		if size != b.size.Dim(d) {
			b.size.SetDim(d, size)
			grow = true
		}
	}
	if grow {
		kids = p.measureKids(e, inner(v, b.size))
	}
	b.kids = kids
	return b
}

func (s *Stack) measure(p *pass, e ecs.Entity, slot, req math32.Vector2) *box {
	v := &s.View
	main := s.Orientation.Dim()
	cross := math32.OtherDim(main)
	b := &box{e: e, el: s, size: p.ownSize(e, v, slot, req)}
	mainBounded := !v.isAuto(main, slot, req)

	measureKids := func(in math32.Vector2, crossBounded bool) (used, maxCross float32) {
		b.kids = b.kids[:0]
		for _, c := range p.children(e) {
			_, kv, ok := p.element(c)
			if !ok {
				continue
			}
			creq := kv.Request()
			if mainBounded && creq.Dim(main) > in.Dim(main) {
				creq.SetDim(main, in.Dim(main))
			}
			if crossBounded {
				if creq.Dim(cross) > in.Dim(cross) {
					creq.SetDim(cross, in.Dim(cross))
				}
				if kv.Align(cross) == styles.AlignFill {
					creq.SetDim(cross, math32.NonNeg(in.Dim(cross)-kv.Margin.Sum(cross)))
				}
			}
			var cslot math32.Vector2
			if creq.Dim(main) > 0 {
				cslot.SetDim(main, creq.Dim(main)+kv.Margin.Sum(main))
			}
			cslot.SetDim(cross, in.Dim(cross))
			kb := p.measure(c, cslot, creq)
			if kb == nil {
				continue
			}
			if len(b.kids) > 0 {
				used += s.Spacing
			}
			used += kb.size.Dim(main) + kv.Margin.Sum(main)
			maxCross = max(maxCross, kb.size.Dim(cross)+kv.Margin.Sum(cross))
			b.kids = append(b.kids, kb)
		}
		return
	}

	crossAuto := v.isAuto(cross, slot, req)
	used, maxCross := measureKids(inner(v, b.size), !crossAuto)
	if crossAuto && len(b.kids) > 0 {
		b.size.SetDim(cross, max(b.size.Dim(cross), maxCross+v.Padding.Sum(cross)))
		used, _ = measureKids(inner(v, b.size), true)
	}
	if !s.OverHide {
		b.size.SetDim(main, max(b.size.Dim(main), used+v.Padding.Sum(main)))
	}
	return b
}

func (s *Stack) arrangeChildren(p *pass, b *box) {
	main := s.Orientation.Dim()
	cross := math32.OtherDim(main)
	origin := p.innerOrigin(b)
	in := inner(&s.View, b.size)
	var cursor float32
	for _, kb := range b.kids {
		kv := kb.el.Base()
		var slot math32.Vector2
		slot.SetDim(main, kb.size.Dim(main)+kv.Margin.Sum(main))
		slot.SetDim(cross, in.Dim(cross))
		at := origin
		if main == math32.X {
			at.X += cursor
		} else {
			at.Y -= cursor
		}
		p.arrange(kb, at, slot)
		cursor += slot.Dim(main) + s.Spacing
	}
}

// tracks returns the tracks of one axis, defaulting to a single
// weighted track.
func tracks(ts []LNumber) []LNumber {
	if len(ts) == 0 {
		return []LNumber{Rate(1)}
	}
	return ts
}

func (g *Grid) measure(p *pass, e ecs.Entity, slot, req math32.Vector2) *box {
	v := &g.View
	b := &box{e: e, el: g, size: p.ownSize(e, v, slot, req)}
	in := inner(v, b.size)
	b.cols = ResolveTracks(in.X, tracks(g.Cols))
	b.rows = ResolveTracks(in.Y, tracks(g.Rows))
	for d := math32.X; d <= math32.Y; d++ {
		if !v.isAuto(d, slot, req) {
			continue
		}
		ts := b.cols
		if d == math32.Y {
			ts = b.rows
		}
		b.size.SetDim(d, max(b.size.Dim(d), sumTracks(ts, 0, len(ts))+v.Padding.Sum(d)))
	}
	for _, c := range p.children(e) {
		cell, ok := p.cells.Get(c)
		if !ok {
			cell = NewGridCell(0, 0)
		}
		col0, col1 := span(cell.Col, cell.ColSpan, len(b.cols))
		row0, row1 := span(cell.Row, cell.RowSpan, len(b.rows))
		cslot := math32.Vec2(sumTracks(b.cols, col0, col1), sumTracks(b.rows, row0, row1))
		_, kv, ok := p.element(c)
		if !ok {
			continue
		}
		kb := p.measure(c, cslot, kv.Request())
		if kb == nil {
			continue
		}
		kb.col0, kb.col1, kb.row0, kb.row1 = col0, col1, row0, row1
		b.kids = append(b.kids, kb)
	}
	return b
}

func (g *Grid) arrangeChildren(p *pass, b *box) {
	origin := p.innerOrigin(b)
	for _, kb := range b.kids {
		at := math32.Vec2(origin.X+sumTracks(b.cols, 0, kb.col0), origin.Y-sumTracks(b.rows, 0, kb.row0))
		slot := math32.Vec2(sumTracks(b.cols, kb.col0, kb.col1), sumTracks(b.rows, kb.row0, kb.row1))
		p.arrange(kb, at, slot)
	}
}

// alignOffset returns the distance from the leading edge of a slot of
// size s to the leading edge of content of size c with margins m1, m2.
func alignOffset(a styles.Align, s, c, m1, m2 float32) float32 {
	switch a {
	case styles.AlignEnd:
		return s - c - m2
	case styles.AlignCenter:
		return m1 + (s-m1-m2-c)/2
	}
	return m1
}

// arrange places b in the slot whose top-left corner is at origin in
// the parent's space, writing its rectangle size and local position,
// and then places its children.
func (p *pass) arrange(b *box, origin, slot math32.Vector2) {
	v := b.el.Base()
	offX := alignOffset(v.Hor, slot.X, b.size.X, v.Margin.Left, v.Margin.Right)
	offY := alignOffset(v.Ver, slot.Y, b.size.Y, v.Margin.Top, v.Margin.Bottom)

	r, _ := p.rects.Get(b.e)
	if r.Width != b.size.X || r.Height != b.size.Y {
		p.rects.Update(b.e, func(r *geom.Rect2D) {
			r.Width, r.Height = b.size.X, b.size.Y
			r.Dirty = true
		})
		p.writes++
	}
	x := origin.X + offX + b.size.X*r.Anchor.X + v.Pos.X
	y := origin.Y - offY - b.size.Y*(1-r.Anchor.Y) + v.Pos.Y
	t, _ := p.transforms.Get(b.e)
	if t.Position.X != x || t.Position.Y != y {
		p.transforms.Update(b.e, func(t *transform.Transform) {
			t.Position.X, t.Position.Y = x, y
		})
		p.writes++
	}
	b.el.arrangeChildren(p, b)
}

// innerOrigin returns the top-left corner inside the padding of an
// arranged box, in the box's own space.
func (p *pass) innerOrigin(b *box) math32.Vector2 {
	r, _ := p.rects.Get(b.e)
	v := b.el.Base()
	return math32.Vec2(r.Left()+v.Padding.Left, r.Top()-v.Padding.Top)
}
