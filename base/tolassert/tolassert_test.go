// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	Equal(t, float32(1), 1.0004)
	EqualTol(t, 3.0, 3.05, 0.1)

	mt := &testing.T{}
	assert.False(t, EqualTol(mt, float32(1), 2, 0.5))
}
