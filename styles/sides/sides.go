// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides holds per-side values of a box, such as the margin
// and padding of a layout element.
package sides

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/scene2d/math32"
)

// Sides has one value for each side of a box.
type Sides[T any] struct {
	Top    T
	Right  T
	Bottom T
	Left   T
}

// NewSides returns sides filled by [Sides.Set].
func NewSides[T any](vals ...T) *Sides[T] {
	return (&Sides[T]{}).Set(vals...)
}

// Set assigns the sides in CSS shorthand order:
//   - none: all zero
//   - one: all sides
//   - two: top and bottom, then right and left
//   - three: top, then right and left, then bottom
//   - four: top, right, bottom, left
//
// Values past the fourth are ignored and logged.
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	var top, right, bottom, left T
	switch n := len(vals); {
	case n == 1:
		top, right, bottom, left = vals[0], vals[0], vals[0], vals[0]
	case n == 2:
		top, right, bottom, left = vals[0], vals[1], vals[0], vals[1]
	case n == 3:
		top, right, bottom, left = vals[0], vals[1], vals[2], vals[1]
	case n >= 4:
		top, right, bottom, left = vals[0], vals[1], vals[2], vals[3]
		if n > 4 {
			slog.Error("sides.Set: more than 4 values", "n", n)
		}
	}
	*s = Sides[T]{Top: top, Right: right, Bottom: bottom, Left: left}
	return s
}

// Thickness is a margin or padding: a width for each side of a box.
type Thickness struct {
	Sides[float32]
}

// NewThickness returns a thickness filled by [Sides.Set].
func NewThickness(vals ...float32) Thickness {
	var th Thickness
	th.Set(vals...)
	return th
}

// Horizontal returns Left + Right.
func (th Thickness) Horizontal() float32 {
	return th.Left + th.Right
}

// Vertical returns Top + Bottom.
func (th Thickness) Vertical() float32 {
	return th.Top + th.Bottom
}

// Size returns the room the sides take on each axis.
func (th Thickness) Size() math32.Vector2 {
	return math32.Vec2(th.Horizontal(), th.Vertical())
}

// Sum returns the room the sides take along the given axis.
func (th Thickness) Sum(d math32.Dims) float32 {
	if d == math32.X {
		return th.Horizontal()
	}
	return th.Vertical()
}

// String returns the four value form "top right bottom left".
func (th Thickness) String() string {
	return fmt.Sprintf("%g %g %g %g", th.Top, th.Right, th.Bottom, th.Left)
}

// SetString parses 1 to 4 space separated numbers.
func (th *Thickness) SetString(str string) error {
	fields := strings.Fields(str)
	vals := make([]float32, len(fields))
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return fmt.Errorf("thickness %q: %w", str, err)
		}
		vals[i] = float32(f)
	}
	th.Set(vals...)
	return nil
}

func (th Thickness) MarshalText() ([]byte, error) {
	return []byte(th.String()), nil
}

func (th *Thickness) UnmarshalText(text []byte) error {
	return th.SetString(string(text))
}
