// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"cogentcore.org/scene2d/base/tolassert"
	"cogentcore.org/scene2d/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLNumber(t *testing.T) {
	tests := []struct {
		in   string
		want LNumber
	}{
		{"120", Const(120)},
		{"2*", Rate(2)},
		{"*", Rate(1)},
		{" 0.5 * ", Rate(0.5)},
	}
	for _, tt := range tests {
		got, err := ParseLNumber(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseLNumber("-1")
	assert.Error(t, err)
	_, err = ParseLNumber("wide")
	assert.Error(t, err)

	var n LNumber
	require.NoError(t, n.UnmarshalText([]byte("3*")))
	assert.True(t, n.IsRate())
	b, err := n.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "3*", string(b))
}

func TestResolveTracks(t *testing.T) {
	sizes := ResolveTracks(120, []LNumber{Rate(30), Rate(90)})
	tolassert.Equal(t, 30, sizes[0])
	tolassert.Equal(t, 90, sizes[1])
	tolassert.Equal(t, 120, sumTracks(sizes, 0, 2))

	sizes = ResolveTracks(100, []LNumber{Const(20), Rate(1), Rate(3)})
	assert.Equal(t, []float32{20, 20, 60}, sizes)

	// fixed tracks larger than the space leave nothing to share
	assert.Equal(t, []float32{20, 0}, ResolveTracks(10, []LNumber{Const(20), Rate(1)}))
	assert.Equal(t, []float32{0, 0}, ResolveTracks(10, []LNumber{Rate(0), Rate(0)}))
}

func TestSpan(t *testing.T) {
	s, e := span(0, 0, 3)
	assert.Equal(t, 0, s)
	assert.Equal(t, 1, e)
	s, e = span(1, 5, 3)
	assert.Equal(t, 1, s)
	assert.Equal(t, 3, e)
	s, e = span(7, 1, 3)
	assert.Equal(t, 2, s)
	assert.Equal(t, 3, e)
	s, e = span(-2, 2, 3)
	assert.Equal(t, 0, s)
	assert.Equal(t, 2, e)
}

func TestAlignOffset(t *testing.T) {
	assert.Equal(t, float32(2), alignOffset(styles.AlignFill, 100, 20, 2, 3))
	assert.Equal(t, float32(2), alignOffset(styles.AlignStart, 100, 20, 2, 3))
	assert.Equal(t, float32(77), alignOffset(styles.AlignEnd, 100, 20, 2, 3))
	assert.Equal(t, float32(39.5), alignOffset(styles.AlignCenter, 100, 20, 2, 3))
}
