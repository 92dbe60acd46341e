// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Quat is quaternion with X,Y,Z and W components.
// The zero value is not a valid rotation; use [QuatIdentity].
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity (no rotation) quaternion.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns a quaternion rotating by angle radians
// around the given axis, which must be normalized.
func QuatFromAxisAngle(axis Vector3, angle float32) Quat {
	s := Sin(angle / 2)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: Cos(angle / 2)}
}

// QuatFromEuler returns the rotation applying roll around X first,
// then pitch around Y, then yaw around Z (all in radians).
func QuatFromEuler(roll, pitch, yaw float32) Quat {
	qx := QuatFromAxisAngle(Vec3(1, 0, 0), roll)
	qy := QuatFromAxisAngle(Vec3(0, 1, 0), pitch)
	qz := QuatFromAxisAngle(Vec3(0, 0, 1), yaw)
	return qz.Mul(qy).Mul(qx)
}

func (q Quat) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// IsIdentity returns whether this quaternion is the identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsZero returns whether all components are zero.
func (q Quat) IsZero() bool {
	return q == Quat{}
}

// Length returns the length of this quaternion
func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normal returns the normalized version of this quaternion.
// A zero quaternion normalizes to the identity.
func (q Quat) Normal() Quat {
	l := q.Length()
	if l == 0 {
		return QuatIdentity()
	}
	return Quat{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// Conjugate returns the conjugate of this quaternion,
// which is its inverse for unit quaternions.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Mul returns the Hamilton product q * other, which applies
// other first and then q.
func (q Quat) Mul(other Quat) Quat {
	qax, qay, qaz, qaw := q.X, q.Y, q.Z, q.W
	qbx, qby, qbz, qbw := other.X, other.Y, other.Z, other.W
	return Quat{
		X: qax*qbw + qaw*qbx + qay*qbz - qaz*qby,
		Y: qay*qbw + qaw*qby + qaz*qbx - qax*qbz,
		Z: qaz*qbw + qaw*qbz + qax*qby - qay*qbx,
		W: qaw*qbw - qax*qbx - qay*qby - qaz*qbz,
	}
}
