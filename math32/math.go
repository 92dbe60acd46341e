// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector, quaternion and matrix package
// for the 2D scene graph, transform propagation and layout.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// Scalar functions, served by chewxy/math32's float32 implementations.
var (
	Abs   = math32.Abs
	Sqrt  = math32.Sqrt
	Sin   = math32.Sin
	Cos   = math32.Cos
	Floor = math32.Floor
	Ceil  = math32.Ceil
	Max   = math32.Max
	Min   = math32.Min
)

// Infinity is positive infinity.
var Infinity = math32.Inf(1)

// Dims names the components of a vector.
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
)

var dimNames = [...]string{"X", "Y", "Z", "W"}

// OtherDim returns the other 2D dimension: X for Y and Y for X.
func OtherDim(d Dims) Dims {
	if d == X {
		return Y
	}
	return X
}

func (d Dims) String() string {
	if d < 0 || int(d) >= len(dimNames) {
		return "Dims(?)"
	}
	return dimNames[d]
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * math.Pi / 180
}

// Clamp limits x to the closed interval [a, b].
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// NonNeg returns x, or 0 when x is negative or NaN.
func NonNeg(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

// EqualTol returns whether a and b are within tol of each other.
func EqualTol(a, b, tol float32) bool {
	return Abs(a-b) <= tol
}
