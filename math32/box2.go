// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2 is an axis-aligned 2D box between its Min and Max corners.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns the box spanning (x0, y0) to (x1, y1).
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Min: Vec2(x0, y0), Max: Vec2(x1, y1)}
}

// B2Empty returns an inverted box that any [Box2.ExpandByPoint]
// turns into the box of that point.
func B2Empty() Box2 {
	return Box2{Min: Vector2Scalar(Infinity), Max: Vector2Scalar(-Infinity)}
}

// IsEmpty returns whether Max is below Min on either axis.
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// ExpandByPoint returns the smallest box holding both b and p.
func (b Box2) ExpandByPoint(p Vector2) Box2 {
	return Box2{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// ContainsPoint returns whether p lies inside b, edges included.
func (b Box2) ContainsPoint(p Vector2) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X && b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// Size returns the extent of the box on each axis.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}
