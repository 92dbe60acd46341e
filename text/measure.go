// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"sync"

	"cogentcore.org/scene2d/math32"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FaceMeasurer measures text with a font face opened at a fixed size,
// scaling linearly to other sizes.
type FaceMeasurer struct {

	// mu guards face, which is not safe for concurrent use.
	mu   sync.Mutex
	face font.Face

	// size is the size in points the face was opened at.
	size float32

	// Default is the size used for labels without one.
	Default float32
}

// NewFaceMeasurer returns a measurer for the given face, opened at the
// given size in points.
func NewFaceMeasurer(face font.Face, size float32) *FaceMeasurer {
	return &FaceMeasurer{face: face, size: size, Default: size}
}

// NewBasic returns a measurer using the fixed 7x13 bitmap face.
func NewBasic() *FaceMeasurer {
	return NewFaceMeasurer(basicfont.Face7x13, 13)
}

// NewLatinModern returns a measurer using Latin Modern Roman 10
// opened at the given size in points.
func NewLatinModern(size float32) (*FaceMeasurer, error) {
	f, err := opentype.Parse(lmroman10regular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: float64(size),
		DPI:  72,
	})
	if err != nil {
		return nil, err
	}
	return NewFaceMeasurer(face, size), nil
}

func (m *FaceMeasurer) DefaultSize() float32 {
	return m.Default
}

func (m *FaceMeasurer) LineSize(line string, size float32) math32.Vector2 {
	m.mu.Lock()
	adv := font.MeasureString(m.face, line)
	height := m.face.Metrics().Height
	m.mu.Unlock()
	scale := float32(1)
	if m.size > 0 && size > 0 {
		scale = size / m.size
	}
	return math32.Vec2(fixedToFloat(adv)*scale, fixedToFloat(height)*scale)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Close releases the face.
func (m *FaceMeasurer) Close() error {
	return m.face.Close()
}
