// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"errors"
	"fmt"

	"cogentcore.org/scene2d/ecs"
)

// ErrMissingComponent is the sentinel wrapped by [MissingComponentError].
var ErrMissingComponent = errors.New("layout: missing component")

// MissingComponentError reports a layout participant that lacks a
// component layout requires. Layout skips that entity's branch and
// carries on with its siblings.
type MissingComponentError struct {
	Entity    ecs.Entity
	Component string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("layout: entity %v has no %s component", e.Entity, e.Component)
}

func (e *MissingComponentError) Unwrap() error {
	return ErrMissingComponent
}
