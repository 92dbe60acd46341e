// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/scene2d/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = float32(1.0e-5)

func tolAssertEqualVector3(t *testing.T, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, standardTol)
	tolassert.EqualTol(t, vt.Y, va.Y, standardTol)
	tolassert.EqualTol(t, vt.Z, va.Z, standardTol)
}

func TestMatrix4(t *testing.T) {
	vx := Vec3(1, 0, 0)
	vy := Vec3(0, 1, 0)
	id := Identity4()

	assert.Equal(t, vx, id.MulVector3AsPoint(vx))

	tr := Translate4(1, 2, 3)
	assert.Equal(t, Vec3(2, 2, 3), tr.MulVector3AsPoint(vx))
	assert.Equal(t, Vec3(1, 2, 3), tr.Translation())

	sc := Scale4(2, 3, 4)
	assert.Equal(t, Vec3(2, 3, 4), sc.MulVector3AsPoint(Vec3(1, 1, 1)))

	rot := Compose(Vector3{}, QuatFromEuler(0, 0, DegToRad(90)), Vec3(1, 1, 1))
	tolAssertEqualVector3(t, vy, rot.MulVector3AsPoint(vx))

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	m := Compose(Vec3(1, 1, 0), QuatFromEuler(0, 0, DegToRad(90)), Vec3(2, 2, 1))
	tolAssertEqualVector3(t, Vec3(1, 3, 0), m.MulVector3AsPoint(vx))

	trs := tr.Mul(&rot)
	prod := trs.Mul(&sc)
	tolAssertEqualVector3(t, Vec3(1, 4, 3), prod.MulVector3AsPoint(vx))
}

func TestMatrix4Inverse(t *testing.T) {
	m := Compose(Vec3(5, -3, 2), QuatFromEuler(0.3, -0.2, 1.1), Vec3(2, 0.5, 1))
	inv, err := m.Inverse()
	require.NoError(t, err)
	p := Vec3(3, 4, 5)
	tolAssertEqualVector3(t, p, inv.MulVector3AsPoint(m.MulVector3AsPoint(p)))

	id := Identity4()
	back := m.Mul(&inv)
	assert.True(t, back.EqualTol(&id, standardTol))
	tolassert.EqualTol(t, 1, m.Determinant()*inv.Determinant(), standardTol)

	singular := Scale4(1, 0, 1)
	_, err = singular.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestQuat(t *testing.T) {
	assert.True(t, QuatIdentity().IsIdentity())
	assert.True(t, Quat{}.IsZero())
	assert.Equal(t, QuatIdentity(), Quat{}.Normal())

	q := QuatFromAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	tolassert.EqualTol(t, 1, q.Length(), standardTol)
	tolassert.EqualTol(t, 1, q.Mul(q.Conjugate()).W, standardTol)

	// two quarter turns make a half turn
	half := q.Mul(q)
	m := Compose(Vector3{}, half, Vec3(1, 1, 1))
	tolAssertEqualVector3(t, Vec3(-1, 0, 0), m.MulVector3AsPoint(Vec3(1, 0, 0)))
}

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())
	b = b.ExpandByPoint(Vec2(1, 2)).ExpandByPoint(Vec2(-1, 5))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B2(-1, 2, 1, 5), b)
	assert.Equal(t, Vec2(2, 3), b.Size())
	assert.True(t, b.ContainsPoint(Vec2(0, 3)))
	assert.False(t, b.ContainsPoint(Vec2(2, 3)))
}

func TestDims(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, float32(4), v.Dim(Y))
	v.SetDim(X, 7)
	assert.Equal(t, Vec2(7, 4), v)
	assert.Equal(t, Y, OtherDim(X))
	assert.Equal(t, "Z", Z.String())
	tolassert.EqualTol(t, 5, Vec2(3, 4).Length(), standardTol)
	assert.Equal(t, float32(0), NonNeg(-3))
	assert.Equal(t, 2, Clamp(5, 0, 2))
}
