// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "errors"

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate4 returns a translation matrix.
func Translate4(x, y, z float32) Matrix4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Scale4 returns a scaling matrix.
func Scale4(x, y, z float32) Matrix4 {
	m := Identity4()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// Compose returns the matrix translating by pos, rotating by quat
// and scaling by scale, applied to points in the order scale,
// rotate, translate (T * R * S).
func Compose(pos Vector3, quat Quat, scale Vector3) Matrix4 {
	x, y, z, w := quat.X, quat.Y, quat.Z, quat.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	var m Matrix4
	m[0] = (1 - (yy + zz)) * scale.X
	m[1] = (xy + wz) * scale.X
	m[2] = (xz - wy) * scale.X

	m[4] = (xy - wz) * scale.Y
	m[5] = (1 - (xx + zz)) * scale.Y
	m[6] = (yz + wx) * scale.Y

	m[8] = (xz + wy) * scale.Z
	m[9] = (yz - wx) * scale.Z
	m[10] = (1 - (xx + yy)) * scale.Z

	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
	m[15] = 1
	return m
}

// Mul returns this matrix times other (m * other).
func (m *Matrix4) Mul(other *Matrix4) Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[c*4+k]
			}
			r[c*4+row] = sum
		}
	}
	return r
}

// MulVector3AsPoint returns the point v transformed by this matrix,
// treating v as homogeneous with w = 1.
func (m *Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w == 0 || w == 1 {
		return Vec3(x, y, z)
	}
	return Vec3(x/w, y/w, z/w)
}

// Translation returns the translation column of this matrix.
func (m *Matrix4) Translation() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	n11, n12, n13, n14 := m[0], m[4], m[8], m[12]
	n21, n22, n23, n24 := m[1], m[5], m[9], m[13]
	n31, n32, n33, n34 := m[2], m[6], m[10], m[14]
	n41, n42, n43, n44 := m[3], m[7], m[11], m[15]

	return n41*(+n14*n23*n32-n13*n24*n32-n14*n22*n33+n12*n24*n33+n13*n22*n34-n12*n23*n34) +
		n42*(+n11*n23*n34-n11*n24*n33+n14*n21*n33-n13*n21*n34+n13*n24*n31-n14*n23*n31) +
		n43*(+n11*n24*n32-n11*n22*n34-n14*n21*n32+n12*n21*n34+n14*n22*n31-n12*n24*n31) +
		n44*(-n13*n22*n31-n11*n23*n32+n11*n22*n33+n13*n21*n32-n12*n21*n33+n12*n23*n31)
}

// ErrSingular is returned by [Matrix4.Inverse] for a matrix with a zero determinant.
var ErrSingular = errors.New("math32: matrix is singular")

// Inverse returns the inverse of this matrix, or [ErrSingular]
// and the identity matrix if it cannot be inverted.
func (m *Matrix4) Inverse() (Matrix4, error) {
	n11, n12, n13, n14 := m[0], m[4], m[8], m[12]
	n21, n22, n23, n24 := m[1], m[5], m[9], m[13]
	n31, n32, n33, n34 := m[2], m[6], m[10], m[14]
	n41, n42, n43, n44 := m[3], m[7], m[11], m[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14
	if det == 0 {
		return Identity4(), ErrSingular
	}
	s := 1 / det

	var r Matrix4
	r[0] = t11 * s
	r[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * s
	r[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * s
	r[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * s

	r[4] = t12 * s
	r[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * s
	r[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * s
	r[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * s

	r[8] = t13 * s
	r[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * s
	r[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * s
	r[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * s

	r[12] = t14 * s
	r[13] = (n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * s
	r[14] = (n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * s
	r[15] = (n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * s
	return r, nil
}

// EqualTol returns whether every element of m is within tol of other.
func (m *Matrix4) EqualTol(other *Matrix4, tol float32) bool {
	for i := range m {
		if Abs(m[i]-other[i]) > tol {
			return false
		}
	}
	return true
}
