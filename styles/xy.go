// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"

	"cogentcore.org/scene2d/math32"
)

// XY holds one value per layout axis, such as a size request or a pair
// of alignments.
type XY[T any] struct {
	X T
	Y T
}

// NewXY returns an [XY] filled by [XY.Set].
func NewXY[T any](v ...T) XY[T] {
	var xy XY[T]
	xy.Set(v...)
	return xy
}

func (xy XY[T]) String() string {
	return fmt.Sprintf("(%v, %v)", xy.X, xy.Y)
}

// Set assigns both axes: nothing clears them, one value goes to both,
// and two or more assign X and Y in order.
func (xy *XY[T]) Set(v ...T) {
	var x, y T
	if len(v) > 0 {
		x, y = v[0], v[0]
	}
	if len(v) > 1 {
		y = v[1]
	}
	xy.X, xy.Y = x, y
}

// Dim returns the value along the given axis. Any axis other than X
// reads Y.
func (xy XY[T]) Dim(d math32.Dims) T {
	if d == math32.X {
		return xy.X
	}
	return xy.Y
}

// SetDim sets the value along the given axis. Any axis other than X
// writes Y.
func (xy *XY[T]) SetDim(d math32.Dims, v T) {
	if d == math32.X {
		xy.X = v
		return
	}
	xy.Y = v
}

// Vector2 returns a float32 pair as a vector.
func Vector2(xy XY[float32]) math32.Vector2 {
	return math32.Vec2(xy.X, xy.Y)
}
