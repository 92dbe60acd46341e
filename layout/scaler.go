// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"

	"cogentcore.org/scene2d/math32"
)

// ScaleModes select which viewport axis a [ScreenScaler] keeps at its
// design size.
type ScaleModes int32

const (
	// ScaleWithWidth keeps the design width and derives the height
	// from the viewport aspect ratio.
	ScaleWithWidth ScaleModes = iota

	// ScaleWithHeight keeps the design height and derives the width.
	ScaleWithHeight
)

func (m ScaleModes) String() string {
	if m == ScaleWithHeight {
		return "height"
	}
	return "width"
}

// MarshalText implements [encoding.TextMarshaler].
func (m ScaleModes) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *ScaleModes) UnmarshalText(text []byte) error {
	switch string(text) {
	case "width", "":
		*m = ScaleWithWidth
	case "height":
		*m = ScaleWithHeight
	default:
		return fmt.Errorf("%q is not a valid value for type ScaleModes", string(text))
	}
	return nil
}

// ScreenScaler is attached to a layout root to lay it out at a fixed
// design resolution and scale it uniformly to the viewport.
type ScreenScaler struct {
	Mode ScaleModes

	// Design is the size of the scaled axis in layout units.
	Design float32
}

// ScaleWithWidthOf returns a scaler keeping the given design width.
func ScaleWithWidthOf(w float32) ScreenScaler {
	return ScreenScaler{Mode: ScaleWithWidth, Design: w}
}

// ScaleWithHeightOf returns a scaler keeping the given design height.
func ScaleWithHeightOf(h float32) ScreenScaler {
	return ScreenScaler{Mode: ScaleWithHeight, Design: h}
}

// Apply returns the uniform scale and the layout size of the root for
// the given viewport. An empty viewport or design scales by one and
// uses the viewport as is.
func (s ScreenScaler) Apply(viewport math32.Vector2) (float32, math32.Vector2) {
	if s.Design <= 0 || viewport.X <= 0 || viewport.Y <= 0 {
		return 1, viewport
	}
	if s.Mode == ScaleWithHeight {
		return viewport.Y / s.Design, math32.Vec2(s.Design/viewport.Y*viewport.X, s.Design)
	}
	return viewport.X / s.Design, math32.Vec2(s.Design, s.Design/viewport.X*viewport.Y)
}
