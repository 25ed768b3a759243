package vex

import "fmt"

// Matrix2 is a 2×2 matrix stored column-major: [m11, m21, m12, m22].
type Matrix2 [4]float32

// Matrix2Identity returns the identity matrix.
func Matrix2Identity() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
	}
}

// NewMatrix2 builds a matrix from values given in column-major order.
func NewMatrix2(m11, m21, m12, m22 float32) Matrix2 {
	return Matrix2{m11, m21, m12, m22}
}

func (m Matrix2) M11() float32 { return m[0] }
func (m Matrix2) M21() float32 { return m[1] }
func (m Matrix2) M12() float32 { return m[2] }
func (m Matrix2) M22() float32 { return m[3] }

func (m *Matrix2) SetM11(v float32) { m[0] = v }
func (m *Matrix2) SetM21(v float32) { m[1] = v }
func (m *Matrix2) SetM12(v float32) { m[2] = v }
func (m *Matrix2) SetM22(v float32) { m[3] = v }

// Set overwrites every element; values are given in column-major order.
func (m *Matrix2) Set(m11, m21, m12, m22 float32) {
	*m = Matrix2{m11, m21, m12, m22}
}

// SetIdentity resets the matrix to identity.
func (m *Matrix2) SetIdentity() {
	*m = Matrix2Identity()
}

// Transpose swaps the matrix across its diagonal in place.
func (m *Matrix2) Transpose() {
	m[1], m[2] = m[2], m[1]
}

// Determinant returns m11*m22 - m12*m21.
func (m Matrix2) Determinant() float32 {
	return m.M11()*m.M22() - m.M12()*m.M21()
}

// Inverse replaces the matrix with its inverse and returns true.
// A matrix whose determinant is exactly 0 is left unchanged and false is
// returned.
func (m *Matrix2) Inverse() bool {
	det := m.Determinant()
	if det == 0 {
		return false
	}

	invDet := 1 / det
	*m = Matrix2{
		m.M22() * invDet,
		-m.M21() * invDet,
		-m.M12() * invDet,
		m.M11() * invDet,
	}
	return true
}

// TransformPoint returns m × p.
func (m Matrix2) TransformPoint(p Vector2) Vector2 {
	return Vector2{
		X: m.M11()*p.X + m.M12()*p.Y,
		Y: m.M21()*p.X + m.M22()*p.Y,
	}
}

// Neg returns the matrix with every element negated.
func (m Matrix2) Neg() Matrix2 {
	for i := range m {
		m[i] = -m[i]
	}
	return m
}

// Add returns the element-wise sum.
func (m Matrix2) Add(o Matrix2) Matrix2 {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

// AddScalar adds s to every element.
func (m Matrix2) AddScalar(s float32) Matrix2 {
	for i := range m {
		m[i] += s
	}
	return m
}

// Sub returns the element-wise difference.
func (m Matrix2) Sub(o Matrix2) Matrix2 {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

// SubScalar subtracts s from every element.
func (m Matrix2) SubScalar(s float32) Matrix2 {
	for i := range m {
		m[i] -= s
	}
	return m
}

// Mul returns the matrix product m × o.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		m.M11()*o.M11() + m.M12()*o.M21(),
		m.M21()*o.M11() + m.M22()*o.M21(),
		m.M11()*o.M12() + m.M12()*o.M22(),
		m.M21()*o.M12() + m.M22()*o.M22(),
	}
}

// MulScalar multiplies every element by s.
func (m Matrix2) MulScalar(s float32) Matrix2 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalar divides every element by s.
func (m Matrix2) DivScalar(s float32) Matrix2 {
	for i := range m {
		m[i] /= s
	}
	return m
}

func (m *Matrix2) AddAssign(o Matrix2)       { *m = m.Add(o) }
func (m *Matrix2) AddScalarAssign(s float32) { *m = m.AddScalar(s) }
func (m *Matrix2) SubAssign(o Matrix2)       { *m = m.Sub(o) }
func (m *Matrix2) SubScalarAssign(s float32) { *m = m.SubScalar(s) }
func (m *Matrix2) MulAssign(o Matrix2)       { *m = m.Mul(o) }
func (m *Matrix2) MulScalarAssign(s float32) { *m = m.MulScalar(s) }
func (m *Matrix2) DivScalarAssign(s float32) { *m = m.DivScalar(s) }

// Equal reports exact element-wise equality.
func (m Matrix2) Equal(o Matrix2) bool {
	return m == o
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Matrix2) ApproxEqual(o Matrix2, eps float32) bool {
	for i := range m {
		if !approx32(m[i], o[i], eps) {
			return false
		}
	}
	return true
}

// IsValid reports whether every element is finite.
func (m Matrix2) IsValid() bool {
	for _, v := range m {
		if !IsValid(v) {
			return false
		}
	}
	return true
}

// String renders the matrix row by row.
func (m Matrix2) String() string {
	return fmt.Sprintf("[\n  %v, %v\n  %v, %v\n]",
		m.M11(), m.M12(),
		m.M21(), m.M22(),
	)
}
