// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout provides the two-pass measure/arrange layout engine:
// the [Element] variants attached to entities ([View], [ContentView],
// [Stack], [Grid]), grid placement with [GridCell] and [LNumber], and
// the [Engine] that invalidates and lays out trees as the scene changes.
//
// Coordinates are y-up. A container hands each child a slot whose
// top-left corner is the container's inner (padding-reduced) top-left
// corner plus the child's offset; children advance rightwards and
// downwards (negative y). A child's local position is the position of
// its anchor point.
package layout

import (
	"fmt"
	"reflect"

	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/math32"
	"cogentcore.org/scene2d/styles"
	"cogentcore.org/scene2d/styles/sides"
	"github.com/jinzhu/copier"
)

// Kinds are the layout element variants.
type Kinds int32

const (
	KindView Kinds = iota
	KindContentView
	KindStack
	KindGrid
)

func (k Kinds) String() string {
	switch k {
	case KindView:
		return "View"
	case KindContentView:
		return "ContentView"
	case KindStack:
		return "Stack"
	case KindGrid:
		return "Grid"
	}
	return fmt.Sprintf("Kinds(%d)", int32(k))
}

// Element is the layout component of an entity. It is a closed set of
// variants: [*View], [*ContentView], [*Stack] and [*Grid].
type Element interface {
	// Base returns the view record shared by all variants.
	Base() *View

	// Kind returns the variant.
	Kind() Kinds

	// measure computes the size of the element and its subtree for the
	// given slot and size request.
	measure(p *pass, e ecs.Entity, slot, req math32.Vector2) *box

	// arrangeChildren places the children measured into b.
	arrangeChildren(p *pass, b *box)
}

// ViewTypes determine whether an element takes part in the automatic
// size of its [ContentView] container.
type ViewTypes int32

const (
	// Static elements grow their container.
	Static ViewTypes = iota

	// Absolute elements are placed in the container without growing it.
	Absolute
)

func (v ViewTypes) String() string {
	if v == Absolute {
		return "absolute"
	}
	return "static"
}

// MarshalText implements [encoding.TextMarshaler].
func (v ViewTypes) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *ViewTypes) UnmarshalText(text []byte) error {
	switch string(text) {
	case "static", "":
		*v = Static
	case "absolute":
		*v = Absolute
	default:
		return fmt.Errorf("%q is not a valid value for type ViewTypes", string(text))
	}
	return nil
}

// View is a leaf element, and the record of properties every variant shares.
// Element children of a View are placed in its inner box by their own
// alignment, without affecting its size.
type View struct {

	// Pos is an offset added to the position computed by layout.
	Pos math32.Vector2

	// Size is the requested size. An axis that is zero or negative
	// is automatic.
	Size styles.XY[float32]

	// Margin is the space kept around the element within its slot.
	Margin sides.Thickness

	// Padding is the space kept between the element's edges and its children.
	Padding sides.Thickness

	// Hor and Ver align the element within its slot. With [styles.AlignFill]
	// an automatic axis takes the whole slot minus the margins.
	Hor, Ver styles.Align

	// UseRectSize takes automatic, non-filling axes from the current
	// [geom.Rect2D] size, as written by text auto-sizing. Only a plain
	// [View] reads it; containers size their automatic axes from
	// their children.
	UseRectSize bool

	// ViewType controls whether a [ContentView] parent grows to this element.
	ViewType ViewTypes
}

// NewView returns a view with the given requested size.
// Zero axes are automatic.
func NewView(w, h float32) *View {
	return &View{Size: styles.XY[float32]{X: w, Y: h}}
}

func (v *View) Base() *View { return v }

func (v *View) Kind() Kinds { return KindView }

// Align returns the alignment for the given dimension.
func (v *View) Align(d math32.Dims) styles.Align {
	if d == math32.X {
		return v.Hor
	}
	return v.Ver
}

// Request returns the requested size as a vector.
func (v *View) Request() math32.Vector2 {
	return styles.Vector2(v.Size)
}

// isAuto returns whether the given axis has no definite size: it is
// neither requested nor filling a bounded slot.
func (v *View) isAuto(d math32.Dims, slot, req math32.Vector2) bool {
	if req.Dim(d) > 0 {
		return false
	}
	return v.Align(d) != styles.AlignFill || slot.Dim(d) <= 0
}

// ContentView is a container that sizes its automatic axes to the
// bounding box of its [Static] children.
type ContentView struct {
	View
}

// NewContentView returns a content view with automatic size.
func NewContentView() *ContentView {
	return &ContentView{}
}

func (c *ContentView) Kind() Kinds { return KindContentView }

// Stack places its children one after another along its orientation.
type Stack struct {
	View

	// Orientation is the main axis.
	Orientation styles.Orientation

	// Spacing is the gap between consecutive children.
	Spacing float32

	// OverHide keeps the stack at its own size even when its children
	// need more, instead of growing to them.
	OverHide bool
}

// NewStack returns a stack with the given orientation and spacing.
func NewStack(o styles.Orientation, spacing float32) *Stack {
	return &Stack{Orientation: o, Spacing: spacing}
}

func (s *Stack) Kind() Kinds { return KindStack }

// Grid places its children in cells defined by row and column tracks.
// An axis without tracks has a single weighted track.
type Grid struct {
	View

	Rows []LNumber
	Cols []LNumber
}

// NewGrid returns a grid with the given rows and columns.
func NewGrid(rows, cols []LNumber) *Grid {
	return &Grid{Rows: rows, Cols: cols}
}

func (g *Grid) Kind() Kinds { return KindGrid }

// GridCell places a child of a [Grid]. Spans of zero count as one.
// A grid child without a GridCell occupies cell (0, 0).
type GridCell struct {
	Col     int `toml:"col" yaml:"col" json:"col"`
	Row     int `toml:"row" yaml:"row" json:"row"`
	ColSpan int `toml:"col_span" yaml:"col_span" json:"col_span"`
	RowSpan int `toml:"row_span" yaml:"row_span" json:"row_span"`
}

// NewGridCell returns a cell at the given column and row with unit spans.
func NewGridCell(col, row int) GridCell {
	return GridCell{Col: col, Row: row, ColSpan: 1, RowSpan: 1}
}

// span returns the half-open track range [start, end) covered along one
// axis, clamped to n tracks.
func span(start, length, n int) (int, int) {
	length = max(length, 1)
	start = math32.Clamp(start, 0, n-1)
	end := min(start+length, n)
	return start, end
}

// Clone returns a deep copy of the element.
func Clone(el Element) Element {
	if base(el) == nil {
		return nil
	}
	var dst Element
	switch el.(type) {
	case *View:
		dst = &View{}
	case *ContentView:
		dst = &ContentView{}
	case *Stack:
		dst = &Stack{}
	case *Grid:
		dst = &Grid{}
	default:
		return nil
	}
	if err := copier.CopyWithOption(dst, el, copier.Option{DeepCopy: true}); err != nil {
		return nil
	}
	return dst
}

// Edit calls fn with the element of e if it is of variant T, recording
// a modification in the store so that layout runs again. It returns
// whether fn was called.
func Edit[T any, PT interface {
	*T
	Element
}](s *ecs.Store[Element], e ecs.Entity, fn func(el PT)) bool {
	el, ok := s.Get(e)
	if !ok {
		return false
	}
	t, ok := el.(PT)
	if !ok {
		return false
	}
	return s.Update(e, func(*Element) { fn(t) })
}

// EditBase calls fn with the shared view record of e's element,
// recording a modification in the store.
func EditBase(s *ecs.Store[Element], e ecs.Entity, fn func(v *View)) bool {
	el, ok := s.Get(e)
	if !ok || base(el) == nil {
		return false
	}
	return s.Update(e, func(el *Element) { fn((*el).Base()) })
}

// base returns the view record of el, or nil when el is nil or holds
// a nil pointer.
func base(el Element) *View {
	if el == nil {
		return nil
	}
	if rv := reflect.ValueOf(el); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	return el.Base()
}
