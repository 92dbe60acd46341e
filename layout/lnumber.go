// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/scene2d/math32"
)

// LNumberKinds are the kinds of grid track sizes.
type LNumberKinds int32

const (
	// KindConst is a fixed track size in pixels.
	KindConst LNumberKinds = iota

	// KindRate is a weighted share of the space left after fixed tracks.
	KindRate
)

// LNumber is the size definition of one grid track (row or column).
// Its text form is "120" for a fixed size and "2*" for a weight,
// with "*" alone meaning a weight of 1.
type LNumber struct {
	Kind  LNumberKinds
	Value float32
}

// Const returns a fixed track size.
func Const(v float32) LNumber {
	return LNumber{Kind: KindConst, Value: v}
}

// Rate returns a weighted track size.
func Rate(w float32) LNumber {
	return LNumber{Kind: KindRate, Value: w}
}

// IsRate returns whether this is a weighted track size.
func (n LNumber) IsRate() bool {
	return n.Kind == KindRate
}

func (n LNumber) String() string {
	v := strconv.FormatFloat(float64(n.Value), 'g', -1, 32)
	if n.Kind == KindRate {
		return v + "*"
	}
	return v
}

// ParseLNumber parses the text form of a track size.
func ParseLNumber(s string) (LNumber, error) {
	s = strings.TrimSpace(s)
	kind := KindConst
	if rest, ok := strings.CutSuffix(s, "*"); ok {
		kind = KindRate
		s = strings.TrimSpace(rest)
		if s == "" {
			return Rate(1), nil
		}
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return LNumber{}, fmt.Errorf("layout: invalid track size %q: %w", s, err)
	}
	if f < 0 {
		return LNumber{}, fmt.Errorf("layout: negative track size %q", s)
	}
	return LNumber{Kind: kind, Value: float32(f)}, nil
}

// MarshalText implements [encoding.TextMarshaler].
func (n LNumber) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (n *LNumber) UnmarshalText(text []byte) error {
	v, err := ParseLNumber(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// ResolveTracks returns the pixel size of each track for the given
// available length. Fixed tracks keep their size; the remainder, never
// below zero, is shared among weighted tracks in proportion to their
// weights. Without any weight the weighted tracks get zero.
func ResolveTracks(avail float32, tracks []LNumber) []float32 {
	rem := avail
	var weights float32
	for _, t := range tracks {
		if t.IsRate() {
			weights += math32.NonNeg(t.Value)
		} else {
			rem -= math32.NonNeg(t.Value)
		}
	}
	rem = math32.NonNeg(rem)
	sizes := make([]float32, len(tracks))
	for i, t := range tracks {
		switch {
		case !t.IsRate():
			sizes[i] = math32.NonNeg(t.Value)
		case weights > 0:
			sizes[i] = rem * math32.NonNeg(t.Value) / weights
		}
	}
	return sizes
}

// sumTracks returns the sum of sizes[from:to].
func sumTracks(sizes []float32, from, to int) float32 {
	var s float32
	for _, v := range sizes[from:to] {
		s += v
	}
	return s
}
