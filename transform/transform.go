// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform provides the Transform component and the systems
// that propagate world matrices and hidden state down the scene graph.
package transform

import (
	"fmt"

	"cogentcore.org/scene2d/base/errors"
	"cogentcore.org/scene2d/math32"
)

// Transform is the local placement of an entity relative to its parent,
// plus the cached world matrix computed by the [Propagator].
type Transform struct {

	// Position is the local translation.
	Position math32.Vector3

	// Rotation is the local rotation.
	Rotation math32.Quat

	// Scale is the local scale.
	Scale math32.Vector3

	// GlobalMatrix is the world transform. It is only valid after the
	// [Propagator] has run for the current frame and is never
	// recomputed on read.
	GlobalMatrix math32.Matrix4
}

// New returns an identity transform.
func New() Transform {
	return Transform{
		Rotation:     math32.QuatIdentity(),
		Scale:        math32.Vec3(1, 1, 1),
		GlobalMatrix: math32.Identity4(),
	}
}

// NewAt returns an identity transform positioned at the given point.
func NewAt(x, y, z float32) Transform {
	t := New()
	t.Position = math32.Vec3(x, y, z)
	return t
}

func (t Transform) String() string {
	return fmt.Sprintf("pos=%v rot=%v scale=%v", t.Position, t.Rotation, t.Scale)
}

// LocalMatrix returns the local matrix: translation * rotation * scale.
func (t *Transform) LocalMatrix() math32.Matrix4 {
	return math32.Compose(t.Position, t.Rotation, t.Scale)
}

// SetPositionX sets the local x position.
func (t *Transform) SetPositionX(v float32) *Transform {
	t.Position.X = v
	return t
}

// SetPositionY sets the local y position.
func (t *Transform) SetPositionY(v float32) *Transform {
	t.Position.Y = v
	return t
}

// SetPositionZ sets the local z position, which orders siblings for rendering.
func (t *Transform) SetPositionZ(v float32) *Transform {
	t.Position.Z = v
	return t
}

// SetRotationEuler sets the rotation from euler angles in radians,
// applied around X, then Y, then Z.
func (t *Transform) SetRotationEuler(x, y, z float32) *Transform {
	t.Rotation = math32.QuatFromEuler(x, y, z)
	return t
}

// SetScale sets the local scale.
func (t *Transform) SetScale(x, y, z float32) *Transform {
	t.Scale = math32.Vec3(x, y, z)
	return t
}

// ViewMatrix returns the inverse of the local matrix, as used by
// cameras: scale⁻¹ * rotation⁻¹ * translation⁻¹.
func (t *Transform) ViewMatrix() math32.Matrix4 {
	is := math32.Scale4(1/t.Scale.X, 1/t.Scale.Y, 1/t.Scale.Z)
	ir := math32.Compose(math32.Vector3{}, t.Rotation.Conjugate(), math32.Vec3(1, 1, 1))
	it := math32.Translate4(-t.Position.X, -t.Position.Y, -t.Position.Z)
	m := is.Mul(&ir)
	return m.Mul(&it)
}

// GlobalViewMatrix returns the inverse of the world matrix.
// A singular world matrix is logged and yields the identity.
func (t *Transform) GlobalViewMatrix() math32.Matrix4 {
	return errors.Log1(t.GlobalMatrix.Inverse())
}

// GlobalPosition returns the world position of the entity's origin.
func (t *Transform) GlobalPosition() math32.Vector3 {
	return t.GlobalMatrix.Translation()
}
