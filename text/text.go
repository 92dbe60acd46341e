// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text provides the Label component and the measurers that
// turn label text into an intrinsic size. The [AutoSize] system writes
// that size into the label's rectangle, where layout picks it up for
// views with UseRectSize set.
package text

import (
	"fmt"
	"strings"

	"cogentcore.org/scene2d/math32"
)

// Label is a text-bearing component.
type Label struct {

	// Text is the label text. Lines are separated by '\n'.
	Text string

	// Size is the font size in points. Zero uses the measurer's default.
	Size float32

	// LineSpacing is the line height as a multiple of the font height.
	// Zero means one.
	LineSpacing float32
}

// NewLabel returns a label with the given text and font size.
func NewLabel(text string, size float32) Label {
	return Label{Text: text, Size: size}
}

func (l Label) String() string {
	return fmt.Sprintf("%q@%g", l.Text, l.Size)
}

// Lines returns the lines of the label text.
func (l Label) Lines() []string {
	return strings.Split(l.Text, "\n")
}

// Measurer measures single lines of text.
type Measurer interface {

	// LineSize returns the advance width and the line height of one
	// line of text at the given font size in points.
	LineSize(line string, size float32) math32.Vector2

	// DefaultSize returns the font size used for labels without one.
	DefaultSize() float32
}

// Measure returns the intrinsic size of the label: the widest line by
// the sum of the line heights scaled by the line spacing.
func Measure(m Measurer, l Label) math32.Vector2 {
	size := l.Size
	if size <= 0 {
		size = m.DefaultSize()
	}
	spacing := l.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	var out math32.Vector2
	lines := l.Lines()
	for i, ln := range lines {
		ls := m.LineSize(ln, size)
		out.X = max(out.X, ls.X)
		if i < len(lines)-1 {
			out.Y += ls.Y * spacing
		} else {
			out.Y += ls.Y
		}
	}
	return math32.Vec2(math32.Ceil(out.X), math32.Ceil(out.Y))
}
