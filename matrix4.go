package vex

import "fmt"

// Matrix4 is a 4×4 matrix stored column-major, matching OpenGL conventions:
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
//
// For an affine transform the fourth column holds the translation.
type Matrix4 [16]float32

// Matrix4Identity returns the identity matrix.
func Matrix4Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMatrix4 builds a matrix from values given in column-major order.
func NewMatrix4(
	m11, m21, m31, m41,
	m12, m22, m32, m42,
	m13, m23, m33, m43,
	m14, m24, m34, m44 float32,
) Matrix4 {
	return Matrix4{
		m11, m21, m31, m41,
		m12, m22, m32, m42,
		m13, m23, m33, m43,
		m14, m24, m34, m44,
	}
}

func (m Matrix4) M11() float32 { return m[0] }
func (m Matrix4) M21() float32 { return m[1] }
func (m Matrix4) M31() float32 { return m[2] }
func (m Matrix4) M41() float32 { return m[3] }
func (m Matrix4) M12() float32 { return m[4] }
func (m Matrix4) M22() float32 { return m[5] }
func (m Matrix4) M32() float32 { return m[6] }
func (m Matrix4) M42() float32 { return m[7] }
func (m Matrix4) M13() float32 { return m[8] }
func (m Matrix4) M23() float32 { return m[9] }
func (m Matrix4) M33() float32 { return m[10] }
func (m Matrix4) M43() float32 { return m[11] }
func (m Matrix4) M14() float32 { return m[12] }
func (m Matrix4) M24() float32 { return m[13] }
func (m Matrix4) M34() float32 { return m[14] }
func (m Matrix4) M44() float32 { return m[15] }

func (m *Matrix4) SetM11(v float32) { m[0] = v }
func (m *Matrix4) SetM21(v float32) { m[1] = v }
func (m *Matrix4) SetM31(v float32) { m[2] = v }
func (m *Matrix4) SetM41(v float32) { m[3] = v }
func (m *Matrix4) SetM12(v float32) { m[4] = v }
func (m *Matrix4) SetM22(v float32) { m[5] = v }
func (m *Matrix4) SetM32(v float32) { m[6] = v }
func (m *Matrix4) SetM42(v float32) { m[7] = v }
func (m *Matrix4) SetM13(v float32) { m[8] = v }
func (m *Matrix4) SetM23(v float32) { m[9] = v }
func (m *Matrix4) SetM33(v float32) { m[10] = v }
func (m *Matrix4) SetM43(v float32) { m[11] = v }
func (m *Matrix4) SetM14(v float32) { m[12] = v }
func (m *Matrix4) SetM24(v float32) { m[13] = v }
func (m *Matrix4) SetM34(v float32) { m[14] = v }
func (m *Matrix4) SetM44(v float32) { m[15] = v }

// Set overwrites every element; values are given in column-major order.
func (m *Matrix4) Set(
	m11, m21, m31, m41,
	m12, m22, m32, m42,
	m13, m23, m33, m43,
	m14, m24, m34, m44 float32,
) {
	*m = NewMatrix4(
		m11, m21, m31, m41,
		m12, m22, m32, m42,
		m13, m23, m33, m43,
		m14, m24, m34, m44,
	)
}

// SetIdentity resets the matrix to identity.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4Identity()
}

// Transpose swaps the matrix across its diagonal in place.
func (m *Matrix4) Transpose() {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[3], m[12] = m[12], m[3]
	m[6], m[9] = m[9], m[6]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
}

// minor3 returns the determinant of the 3×3 matrix with the given rows.
func minor3(
	a, b, c,
	d, e, f,
	g, h, i float32,
) float32 {
	return NewMatrix3(a, d, g, b, e, h, c, f, i).Determinant()
}

// Determinant expands along the first row using four 3×3 minors.
func (m Matrix4) Determinant() float32 {
	a := m.M11() * minor3(
		m.M22(), m.M23(), m.M24(),
		m.M32(), m.M33(), m.M34(),
		m.M42(), m.M43(), m.M44(),
	)
	b := m.M12() * minor3(
		m.M21(), m.M23(), m.M24(),
		m.M31(), m.M33(), m.M34(),
		m.M41(), m.M43(), m.M44(),
	)
	c := m.M13() * minor3(
		m.M21(), m.M22(), m.M24(),
		m.M31(), m.M32(), m.M34(),
		m.M41(), m.M42(), m.M44(),
	)
	d := m.M14() * minor3(
		m.M21(), m.M22(), m.M23(),
		m.M31(), m.M32(), m.M33(),
		m.M41(), m.M42(), m.M43(),
	)
	return a - b + c - d
}

// Inverse replaces the matrix with its inverse (adjugate / determinant) and
// returns true. A matrix whose determinant is exactly 0 is left unchanged and
// false is returned.
func (m *Matrix4) Inverse() bool {
	det := m.Determinant()
	if det == 0 {
		return false
	}
	invDet := 1 / det

	m11, m21, m31, m41 := m[0], m[1], m[2], m[3]
	m12, m22, m32, m42 := m[4], m[5], m[6], m[7]
	m13, m23, m33, m43 := m[8], m[9], m[10], m[11]
	m14, m24, m34, m44 := m[12], m[13], m[14], m[15]

	// first column
	c11 := m22*m33*m44 - m22*m43*m34 - m23*m32*m44 + m23*m42*m34 + m24*m32*m43 - m24*m42*m33
	c21 := -m21*m33*m44 + m21*m43*m34 + m23*m31*m44 - m23*m41*m34 - m24*m31*m43 + m24*m41*m33
	c31 := m21*m32*m44 - m21*m42*m34 - m22*m31*m44 + m22*m41*m34 + m24*m31*m42 - m24*m41*m32
	c41 := -m21*m32*m43 + m21*m42*m33 + m22*m31*m43 - m22*m41*m33 - m23*m31*m42 + m23*m41*m32

	// second column
	c12 := -m12*m33*m44 + m12*m43*m34 + m13*m32*m44 - m13*m42*m34 - m14*m32*m43 + m14*m42*m33
	c22 := m11*m33*m44 - m11*m43*m34 - m13*m31*m44 + m13*m41*m34 + m14*m31*m43 - m14*m41*m33
	c32 := -m11*m32*m44 + m11*m42*m34 + m12*m31*m44 - m12*m41*m34 - m14*m31*m42 + m14*m41*m32
	c42 := m11*m32*m43 - m11*m42*m33 - m12*m31*m43 + m12*m41*m33 + m13*m31*m42 - m13*m41*m32

	// third column
	c13 := m12*m23*m44 - m12*m43*m24 - m13*m22*m44 + m13*m42*m24 + m14*m22*m43 - m14*m42*m23
	c23 := -m11*m23*m44 + m11*m43*m24 + m13*m21*m44 - m13*m41*m24 - m14*m21*m43 + m14*m41*m23
	c33 := m11*m22*m44 - m11*m42*m24 - m12*m21*m44 + m12*m41*m24 + m14*m21*m42 - m14*m41*m22
	c43 := -m11*m22*m43 + m11*m42*m23 + m12*m21*m43 - m12*m41*m23 - m13*m21*m42 + m13*m41*m22

	// fourth column
	c14 := -m12*m23*m34 + m12*m33*m24 + m13*m22*m34 - m13*m32*m24 - m14*m22*m33 + m14*m32*m23
	c24 := m11*m23*m34 - m11*m33*m24 - m13*m21*m34 + m13*m31*m24 + m14*m21*m33 - m14*m31*m23
	c34 := -m11*m22*m34 + m11*m32*m24 + m12*m21*m34 - m12*m31*m24 - m14*m21*m32 + m14*m31*m22
	c44 := m11*m22*m33 - m11*m32*m23 - m12*m21*m33 + m12*m31*m23 + m13*m21*m32 - m13*m31*m22

	*m = Matrix4{
		c11 * invDet, c21 * invDet, c31 * invDet, c41 * invDet,
		c12 * invDet, c22 * invDet, c32 * invDet, c42 * invDet,
		c13 * invDet, c23 * invDet, c33 * invDet, c43 * invDet,
		c14 * invDet, c24 * invDet, c34 * invDet, c44 * invDet,
	}
	return true
}

// TransformPoint3 transforms a 3D point, treating it as (x, y, z, 1) so the
// fourth column acts as a translation. No perspective divide is applied.
func (m Matrix4) TransformPoint3(p Vector3) Vector3 {
	return Vector3{
		X: m.M11()*p.X + m.M12()*p.Y + m.M13()*p.Z + m.M14(),
		Y: m.M21()*p.X + m.M22()*p.Y + m.M23()*p.Z + m.M24(),
		Z: m.M31()*p.X + m.M32()*p.Y + m.M33()*p.Z + m.M34(),
	}
}

// TransformPoint4 returns m × p, including the w component.
func (m Matrix4) TransformPoint4(p Vector4) Vector4 {
	return Vector4{
		X: m.M11()*p.X + m.M12()*p.Y + m.M13()*p.Z + m.M14()*p.W,
		Y: m.M21()*p.X + m.M22()*p.Y + m.M23()*p.Z + m.M24()*p.W,
		Z: m.M31()*p.X + m.M32()*p.Y + m.M33()*p.Z + m.M34()*p.W,
		W: m.M41()*p.X + m.M42()*p.Y + m.M43()*p.Z + m.M44()*p.W,
	}
}

// Neg returns the matrix with every element negated.
func (m Matrix4) Neg() Matrix4 {
	for i := range m {
		m[i] = -m[i]
	}
	return m
}

// Add returns the element-wise sum.
func (m Matrix4) Add(o Matrix4) Matrix4 {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

// AddScalar adds s to every element.
func (m Matrix4) AddScalar(s float32) Matrix4 {
	for i := range m {
		m[i] += s
	}
	return m
}

// Sub returns the element-wise difference.
func (m Matrix4) Sub(o Matrix4) Matrix4 {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

// SubScalar subtracts s from every element.
func (m Matrix4) SubScalar(s float32) Matrix4 {
	for i := range m {
		m[i] -= s
	}
	return m
}

// Mul returns the matrix product m × o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var out Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = m[row]*o[col*4] +
				m[4+row]*o[col*4+1] +
				m[8+row]*o[col*4+2] +
				m[12+row]*o[col*4+3]
		}
	}
	return out
}

// MulScalar multiplies every element by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalar divides every element by s.
func (m Matrix4) DivScalar(s float32) Matrix4 {
	for i := range m {
		m[i] /= s
	}
	return m
}

func (m *Matrix4) AddAssign(o Matrix4)       { *m = m.Add(o) }
func (m *Matrix4) AddScalarAssign(s float32) { *m = m.AddScalar(s) }
func (m *Matrix4) SubAssign(o Matrix4)       { *m = m.Sub(o) }
func (m *Matrix4) SubScalarAssign(s float32) { *m = m.SubScalar(s) }
func (m *Matrix4) MulAssign(o Matrix4)       { *m = m.Mul(o) }
func (m *Matrix4) MulScalarAssign(s float32) { *m = m.MulScalar(s) }
func (m *Matrix4) DivScalarAssign(s float32) { *m = m.DivScalar(s) }

// Equal reports exact element-wise equality.
func (m Matrix4) Equal(o Matrix4) bool {
	return m == o
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Matrix4) ApproxEqual(o Matrix4, eps float32) bool {
	for i := range m {
		if !approx32(m[i], o[i], eps) {
			return false
		}
	}
	return true
}

// IsValid reports whether every element is finite.
func (m Matrix4) IsValid() bool {
	for _, v := range m {
		if !IsValid(v) {
			return false
		}
	}
	return true
}

// String renders the matrix row by row.
func (m Matrix4) String() string {
	return fmt.Sprintf("[\n  %v, %v, %v, %v\n  %v, %v, %v, %v\n  %v, %v, %v, %v\n  %v, %v, %v, %v\n]",
		m.M11(), m.M12(), m.M13(), m.M14(),
		m.M21(), m.M22(), m.M23(), m.M24(),
		m.M31(), m.M32(), m.M33(), m.M34(),
		m.M41(), m.M42(), m.M43(), m.M44(),
	)
}
