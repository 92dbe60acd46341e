// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{X: scalar, Y: scalar}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Dim returns this vector component.
func (v Vector2) Dim(dim Dims) float32 {
	if dim == X {
		return v.X
	}
	return v.Y
}

// SetDim sets this vector component value by dimension index.
func (v *Vector2) SetDim(dim Dims, value float32) {
	if dim == X {
		v.X = value
	} else {
		v.Y = value
	}
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Dot returns the dot product of this vector with other.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the length of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(max(v.X, other.X), max(v.Y, other.Y))
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(min(v.X, other.X), min(v.Y, other.Y))
}
