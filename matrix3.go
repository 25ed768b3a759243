package vex

import "fmt"

// Matrix3 is a 3×3 matrix stored column-major:
//
//	| 0  3  6 |
//	| 1  4  7 |
//	| 2  5  8 |
type Matrix3 [9]float32

// Matrix3Identity returns the identity matrix.
func Matrix3Identity() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NewMatrix3 builds a matrix from values given in column-major order.
func NewMatrix3(
	m11, m21, m31,
	m12, m22, m32,
	m13, m23, m33 float32,
) Matrix3 {
	return Matrix3{
		m11, m21, m31,
		m12, m22, m32,
		m13, m23, m33,
	}
}

func (m Matrix3) M11() float32 { return m[0] }
func (m Matrix3) M21() float32 { return m[1] }
func (m Matrix3) M31() float32 { return m[2] }
func (m Matrix3) M12() float32 { return m[3] }
func (m Matrix3) M22() float32 { return m[4] }
func (m Matrix3) M32() float32 { return m[5] }
func (m Matrix3) M13() float32 { return m[6] }
func (m Matrix3) M23() float32 { return m[7] }
func (m Matrix3) M33() float32 { return m[8] }

func (m *Matrix3) SetM11(v float32) { m[0] = v }
func (m *Matrix3) SetM21(v float32) { m[1] = v }
func (m *Matrix3) SetM31(v float32) { m[2] = v }
func (m *Matrix3) SetM12(v float32) { m[3] = v }
func (m *Matrix3) SetM22(v float32) { m[4] = v }
func (m *Matrix3) SetM32(v float32) { m[5] = v }
func (m *Matrix3) SetM13(v float32) { m[6] = v }
func (m *Matrix3) SetM23(v float32) { m[7] = v }
func (m *Matrix3) SetM33(v float32) { m[8] = v }

// Set overwrites every element; values are given in column-major order.
func (m *Matrix3) Set(
	m11, m21, m31,
	m12, m22, m32,
	m13, m23, m33 float32,
) {
	*m = NewMatrix3(m11, m21, m31, m12, m22, m32, m13, m23, m33)
}

// SetIdentity resets the matrix to identity.
func (m *Matrix3) SetIdentity() {
	*m = Matrix3Identity()
}

// Transpose swaps the matrix across its diagonal in place.
func (m *Matrix3) Transpose() {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
}

// minor2 returns the determinant of the 2×2 matrix with rows (a, b) and (c, d).
func minor2(a, b, c, d float32) float32 {
	return NewMatrix2(a, c, b, d).Determinant()
}

// Determinant expands along the first row.
func (m Matrix3) Determinant() float32 {
	return m.M11()*minor2(m.M22(), m.M23(), m.M32(), m.M33()) -
		m.M12()*minor2(m.M21(), m.M23(), m.M31(), m.M33()) +
		m.M13()*minor2(m.M21(), m.M22(), m.M31(), m.M32())
}

// Inverse replaces the matrix with its inverse (adjugate / determinant) and
// returns true. A matrix whose determinant is exactly 0 is left unchanged and
// false is returned.
func (m *Matrix3) Inverse() bool {
	det := m.Determinant()
	if det == 0 {
		return false
	}

	invDet := 1 / det
	// Swapped minor columns carry the cofactor sign.
	*m = Matrix3{
		minor2(m.M22(), m.M23(), m.M32(), m.M33()) * invDet,
		minor2(m.M23(), m.M21(), m.M33(), m.M31()) * invDet,
		minor2(m.M21(), m.M22(), m.M31(), m.M32()) * invDet,

		minor2(m.M13(), m.M12(), m.M33(), m.M32()) * invDet,
		minor2(m.M11(), m.M13(), m.M31(), m.M33()) * invDet,
		minor2(m.M12(), m.M11(), m.M32(), m.M31()) * invDet,

		minor2(m.M12(), m.M13(), m.M22(), m.M23()) * invDet,
		minor2(m.M13(), m.M11(), m.M23(), m.M21()) * invDet,
		minor2(m.M11(), m.M12(), m.M21(), m.M22()) * invDet,
	}
	return true
}

// TransformPoint2 transforms a 2D point, treating it as (x, y, 1) so the
// third column acts as a translation.
func (m Matrix3) TransformPoint2(p Vector2) Vector2 {
	return Vector2{
		X: m.M11()*p.X + m.M12()*p.Y + m.M13(),
		Y: m.M21()*p.X + m.M22()*p.Y + m.M23(),
	}
}

// TransformPoint3 returns m × p.
func (m Matrix3) TransformPoint3(p Vector3) Vector3 {
	return Vector3{
		X: m.M11()*p.X + m.M12()*p.Y + m.M13()*p.Z,
		Y: m.M21()*p.X + m.M22()*p.Y + m.M23()*p.Z,
		Z: m.M31()*p.X + m.M32()*p.Y + m.M33()*p.Z,
	}
}

// Neg returns the matrix with every element negated.
func (m Matrix3) Neg() Matrix3 {
	for i := range m {
		m[i] = -m[i]
	}
	return m
}

// Add returns the element-wise sum.
func (m Matrix3) Add(o Matrix3) Matrix3 {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

// AddScalar adds s to every element.
func (m Matrix3) AddScalar(s float32) Matrix3 {
	for i := range m {
		m[i] += s
	}
	return m
}

// Sub returns the element-wise difference.
func (m Matrix3) Sub(o Matrix3) Matrix3 {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

// SubScalar subtracts s from every element.
func (m Matrix3) SubScalar(s float32) Matrix3 {
	for i := range m {
		m[i] -= s
	}
	return m
}

// Mul returns the matrix product m × o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	return Matrix3{
		m.M11()*o.M11() + m.M12()*o.M21() + m.M13()*o.M31(),
		m.M21()*o.M11() + m.M22()*o.M21() + m.M23()*o.M31(),
		m.M31()*o.M11() + m.M32()*o.M21() + m.M33()*o.M31(),

		m.M11()*o.M12() + m.M12()*o.M22() + m.M13()*o.M32(),
		m.M21()*o.M12() + m.M22()*o.M22() + m.M23()*o.M32(),
		m.M31()*o.M12() + m.M32()*o.M22() + m.M33()*o.M32(),

		m.M11()*o.M13() + m.M12()*o.M23() + m.M13()*o.M33(),
		m.M21()*o.M13() + m.M22()*o.M23() + m.M23()*o.M33(),
		m.M31()*o.M13() + m.M32()*o.M23() + m.M33()*o.M33(),
	}
}

// MulScalar multiplies every element by s.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalar divides every element by s.
func (m Matrix3) DivScalar(s float32) Matrix3 {
	for i := range m {
		m[i] /= s
	}
	return m
}

func (m *Matrix3) AddAssign(o Matrix3)       { *m = m.Add(o) }
func (m *Matrix3) AddScalarAssign(s float32) { *m = m.AddScalar(s) }
func (m *Matrix3) SubAssign(o Matrix3)       { *m = m.Sub(o) }
func (m *Matrix3) SubScalarAssign(s float32) { *m = m.SubScalar(s) }
func (m *Matrix3) MulAssign(o Matrix3)       { *m = m.Mul(o) }
func (m *Matrix3) MulScalarAssign(s float32) { *m = m.MulScalar(s) }
func (m *Matrix3) DivScalarAssign(s float32) { *m = m.DivScalar(s) }

// Equal reports exact element-wise equality.
func (m Matrix3) Equal(o Matrix3) bool {
	return m == o
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Matrix3) ApproxEqual(o Matrix3, eps float32) bool {
	for i := range m {
		if !approx32(m[i], o[i], eps) {
			return false
		}
	}
	return true
}

// IsValid reports whether every element is finite.
func (m Matrix3) IsValid() bool {
	for _, v := range m {
		if !IsValid(v) {
			return false
		}
	}
	return true
}

// String renders the matrix row by row.
func (m Matrix3) String() string {
	return fmt.Sprintf("[\n  %v, %v, %v\n  %v, %v, %v\n  %v, %v, %v\n]",
		m.M11(), m.M12(), m.M13(),
		m.M21(), m.M22(), m.M23(),
		m.M31(), m.M32(), m.M33(),
	)
}
