// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the Rect2D component: the size and anchor of
// an entity's rectangle, as written by layout and read by renderers
// and hit testing.
package geom

import (
	"fmt"

	"cogentcore.org/scene2d/math32"
)

// Rect2D is the rectangle of an entity in its local space. The entity's
// local position is the anchor point of the rectangle.
type Rect2D struct {

	// Width and Height of the rectangle.
	Width, Height float32

	// Anchor is the normalized pivot within the rectangle:
	// (0, 0) is the bottom-left corner and (1, 1) the top-right one.
	Anchor math32.Vector2

	// Dirty is set whenever layout changes the size, for consumers
	// (mesh builders) that regenerate geometry from it. They clear it.
	Dirty bool
}

// NewRect2D returns a rectangle of the given size with a centered anchor.
func NewRect2D(w, h float32) Rect2D {
	return Rect2D{Width: w, Height: h, Anchor: math32.Vec2(0.5, 0.5)}
}

func (r Rect2D) String() string {
	return fmt.Sprintf("%gx%g@(%g, %g)", r.Width, r.Height, r.Anchor.X, r.Anchor.Y)
}

// Size returns (Width, Height).
func (r Rect2D) Size() math32.Vector2 {
	return math32.Vec2(r.Width, r.Height)
}

// Left returns the x of the left edge relative to the anchor.
func (r Rect2D) Left() float32 {
	return -r.Width * r.Anchor.X
}

// Right returns the x of the right edge relative to the anchor.
func (r Rect2D) Right() float32 {
	return r.Width * (1 - r.Anchor.X)
}

// Bottom returns the y of the bottom edge relative to the anchor.
func (r Rect2D) Bottom() float32 {
	return -r.Height * r.Anchor.Y
}

// Top returns the y of the top edge relative to the anchor.
func (r Rect2D) Top() float32 {
	return r.Height * (1 - r.Anchor.Y)
}

// CornerPoints returns the edges as [left, right, bottom, top].
func (r Rect2D) CornerPoints() [4]float32 {
	return [4]float32{r.Left(), r.Right(), r.Bottom(), r.Top()}
}

// Bounds returns the local bounding box of the rectangle.
func (r Rect2D) Bounds() math32.Box2 {
	return math32.B2(r.Left(), r.Bottom(), r.Right(), r.Top())
}

// Test returns whether the point lies inside the rectangle after it is
// transformed by the given world matrix, which may rotate and scale it
// into an oriented box. Empty rectangles are never hit.
func (r Rect2D) Test(global *math32.Matrix4, pt math32.Vector2) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	p0 := global.MulVector3AsPoint(math32.Vec3(r.Left(), r.Top(), 0)).XY()
	p1 := global.MulVector3AsPoint(math32.Vec3(r.Right(), r.Top(), 0)).XY()
	p2 := global.MulVector3AsPoint(math32.Vec3(r.Left(), r.Bottom(), 0)).XY()
	am := pt.Sub(p0)
	ab := p1.Sub(p0)
	ad := p2.Sub(p0)
	amab := am.Dot(ab)
	amad := am.Dot(ad)
	return 0 <= amab && amab <= ab.Dot(ab) && 0 <= amad && amad <= ad.Dot(ad)
}
