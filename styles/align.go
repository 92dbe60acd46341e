// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the alignment, orientation and per-axis value
// types shared by the layout elements.
package styles

import (
	"fmt"
	"strings"

	"cogentcore.org/scene2d/math32"
)

// Align specifies how an element is placed within the slot its
// parent allocates to it along one axis.
type Align int32

const (
	// AlignFill stretches the element to fill the slot (minus its margins).
	// It is the default.
	AlignFill Align = iota

	// AlignStart places the element flush with the start (left, top) of the slot.
	AlignStart

	// AlignCenter centers the element in the space left after its margins.
	AlignCenter

	// AlignEnd places the element flush with the end (right, bottom) of the slot.
	AlignEnd
)

var alignNames = [...]string{"fill", "start", "center", "end"}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("Align(%d)", int32(a))
	}
	return alignNames[a]
}

// SetString sets the alignment from its name (case insensitive).
func (a *Align) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range alignNames {
		if n == s {
			*a = Align(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Align", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Align) UnmarshalText(text []byte) error {
	return a.SetString(string(text))
}

// Orientation is the main axis of a stack.
type Orientation int32

const (
	// Horizontal stacks children left to right.
	Horizontal Orientation = iota

	// Vertical stacks children top to bottom.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int32(o))
}

// Dim returns the main axis dimension: X for Horizontal, Y for Vertical.
func (o Orientation) Dim() math32.Dims {
	if o == Vertical {
		return math32.Y
	}
	return math32.X
}

// SetString sets the orientation from its name (case insensitive).
func (o *Orientation) SetString(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "row":
		*o = Horizontal
	case "vertical", "column":
		*o = Vertical
	default:
		return fmt.Errorf("%q is not a valid value for type Orientation", s)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Orientation) UnmarshalText(text []byte) error {
	return o.SetString(string(text))
}
