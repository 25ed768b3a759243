package vex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix2Accessors(t *testing.T) {
	m := NewMatrix2(1, 2, 3, 4)
	assert.Equal(t, float32(1), m.M11())
	assert.Equal(t, float32(2), m.M21())
	assert.Equal(t, float32(3), m.M12())
	assert.Equal(t, float32(4), m.M22())

	m.SetM12(9)
	assert.Equal(t, Matrix2{1, 2, 9, 4}, m)

	m.SetIdentity()
	assert.Equal(t, Matrix2Identity(), m)
	m.Set(5, 6, 7, 8)
	assert.Equal(t, NewMatrix2(5, 6, 7, 8), m)
}

func TestMatrix2Mul(t *testing.T) {
	a := NewMatrix2(1, 2, 3, 4)
	b := NewMatrix2(5, 6, 7, 8)
	assert.Equal(t, NewMatrix2(23, 34, 31, 46), a.Mul(b))

	a.MulAssign(b)
	assert.Equal(t, NewMatrix2(23, 34, 31, 46), a)
}

func TestMatrix2TransformPoint(t *testing.T) {
	m := NewMatrix2(1, 2, 3, 4)
	assert.Equal(t, NewVector2(7, 10), m.TransformPoint(NewVector2(1, 2)))
}

func TestMatrix2Inverse(t *testing.T) {
	m := NewMatrix2(1, 2, 3, 4)
	assert.Equal(t, float32(-2), m.Determinant())
	require.True(t, m.Inverse())
	assert.Equal(t, NewMatrix2(-2, 1, 1.5, -0.5), m)

	singular := NewMatrix2(1, 2, 2, 4)
	assert.False(t, singular.Inverse())
	assert.Equal(t, NewMatrix2(1, 2, 2, 4), singular)
}

func TestMatrix2ElementWise(t *testing.T) {
	a := NewMatrix2(1, 2, 3, 4)
	b := NewMatrix2(4, 3, 2, 1)

	assert.Equal(t, NewMatrix2(5, 5, 5, 5), a.Add(b))
	assert.Equal(t, NewMatrix2(-3, -1, 1, 3), a.Sub(b))
	assert.Equal(t, NewMatrix2(-1, -2, -3, -4), a.Neg())
	assert.Equal(t, NewMatrix2(2, 3, 4, 5), a.AddScalar(1))
	assert.Equal(t, NewMatrix2(0, 1, 2, 3), a.SubScalar(1))
	assert.Equal(t, NewMatrix2(2, 4, 6, 8), a.MulScalar(2))
	assert.Equal(t, NewMatrix2(0.5, 1, 1.5, 2), a.DivScalar(2))

	c := a
	c.AddAssign(b)
	c.SubAssign(b)
	c.AddScalarAssign(2)
	c.SubScalarAssign(2)
	c.MulScalarAssign(4)
	c.DivScalarAssign(4)
	assert.True(t, c.Equal(a))

	a.Transpose()
	assert.Equal(t, NewMatrix2(1, 3, 2, 4), a)
}

func TestMatrix2String(t *testing.T) {
	assert.Equal(t, "[\n  1, 3\n  2, 4\n]", NewMatrix2(1, 2, 3, 4).String())
}

func TestMatrix3Accessors(t *testing.T) {
	m := NewMatrix3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	got := []float32{
		m.M11(), m.M21(), m.M31(),
		m.M12(), m.M22(), m.M32(),
		m.M13(), m.M23(), m.M33(),
	}
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, got)

	m.SetM13(0)
	assert.Equal(t, float32(0), m[6])
	m.SetM31(-1)
	assert.Equal(t, float32(-1), m[2])
}

func TestMatrix3Mul(t *testing.T) {
	a := NewMatrix3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b := NewMatrix3(9, 8, 7, 6, 5, 4, 3, 2, 1)
	assert.Equal(t, NewMatrix3(90, 114, 138, 54, 69, 84, 18, 24, 30), a.Mul(b))
	assert.Equal(t, a, a.Mul(Matrix3Identity()))
}

func TestMatrix3Transforms(t *testing.T) {
	m := NewMatrix3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, float32(0), m.Determinant())
	assert.Equal(t, NewVector2(16, 20), m.TransformPoint2(NewVector2(1, 2)))
	assert.Equal(t, NewVector3(30, 36, 42), m.TransformPoint3(NewVector3(1, 2, 3)))

	m.Transpose()
	assert.Equal(t, NewMatrix3(1, 4, 7, 2, 5, 8, 3, 6, 9), m)
}

func TestMatrix3Inverse(t *testing.T) {
	// upper triangular, determinant 1
	m := NewMatrix3(1, 0, 0, 2, 1, 0, 3, 4, 1)
	assert.Equal(t, float32(1), m.Determinant())

	inv := m
	require.True(t, inv.Inverse())
	assert.Equal(t, NewMatrix3(1, 0, 0, -2, 1, 0, 5, -4, 1), inv)
	assert.Equal(t, Matrix3Identity(), m.Mul(inv))

	m = NewMatrix3(1, 0, 5, 2, 1, 6, 3, 4, 0)
	assert.Equal(t, float32(1), m.Determinant())
	inv = m
	require.True(t, inv.Inverse())
	assert.Equal(t, NewMatrix3(-24, 20, -5, 18, -15, 4, 5, -4, 1), inv)
	assert.Equal(t, Matrix3Identity(), m.Mul(inv))

	singular := NewMatrix3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.False(t, singular.Inverse())
	assert.Equal(t, NewMatrix3(1, 2, 3, 4, 5, 6, 7, 8, 9), singular)
}

func TestMatrix3ElementWise(t *testing.T) {
	a := NewMatrix3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, a.MulScalar(2), a.Add(a))
	assert.Equal(t, Matrix3{}, a.Sub(a))
	assert.Equal(t, a.MulScalar(-1), a.Neg())
	assert.Equal(t, a, a.AddScalar(3).SubScalar(3))
	assert.Equal(t, a, a.MulScalar(4).DivScalar(4))

	b := a
	b.MulAssign(Matrix3Identity())
	assert.True(t, b.Equal(a))
	assert.True(t, b.ApproxEqual(a.AddScalar(1e-4), 1e-3))
	assert.False(t, b.ApproxEqual(a.AddScalar(1), 1e-3))
}

func TestMatrix3String(t *testing.T) {
	want := "[\n  1, 4, 7\n  2, 5, 8\n  3, 6, 9\n]"
	assert.Equal(t, want, NewMatrix3(1, 2, 3, 4, 5, 6, 7, 8, 9).String())
}

func TestMatrix4Accessors(t *testing.T) {
	m := NewMatrix4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	got := []float32{
		m.M11(), m.M21(), m.M31(), m.M41(),
		m.M12(), m.M22(), m.M32(), m.M42(),
		m.M13(), m.M23(), m.M33(), m.M43(),
		m.M14(), m.M24(), m.M34(), m.M44(),
	}
	for i, v := range got {
		assert.Equal(t, float32(i+1), v)
	}

	m.SetM43(0)
	m.SetM34(0)
	assert.Equal(t, float32(0), m[11])
	assert.Equal(t, float32(0), m[14])
}

func TestMatrix4Mul(t *testing.T) {
	a := NewMatrix4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	b := NewMatrix4(16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
	want := NewMatrix4(
		386, 444, 502, 560,
		274, 316, 358, 400,
		162, 188, 214, 240,
		50, 60, 70, 80,
	)
	assert.Equal(t, want, a.Mul(b))
	assert.Equal(t, a, Matrix4Identity().Mul(a))
}

func TestMatrix4Inverse(t *testing.T) {
	m := NewMatrix4(1, 0, 2, 2, 0, 2, 1, 0, 0, 1, 0, 1, 1, 2, 1, 4)
	assert.Equal(t, float32(2), m.Determinant())

	inv := m
	require.True(t, inv.Inverse())
	want := NewMatrix4(
		-2, 1, -8, 3,
		-0.5, 0.5, -1, 0.5,
		1, 0, 2, -1,
		0.5, -0.5, 2, -0.5,
	)
	assert.Equal(t, want, inv)
	assert.Equal(t, Matrix4Identity(), m.Mul(inv))
	assert.Equal(t, Matrix4Identity(), inv.Mul(m))
}

func TestMatrix4InverseSingular(t *testing.T) {
	m := NewMatrix4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	assert.Equal(t, float32(0), m.Determinant())

	before := m
	assert.False(t, m.Inverse())
	assert.Equal(t, before, m)

	var zero Matrix4
	assert.False(t, zero.Inverse())
	assert.Equal(t, Matrix4{}, zero)
}

func TestMatrix4Transpose(t *testing.T) {
	m := NewMatrix4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	m.Transpose()
	assert.Equal(t, NewMatrix4(1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16), m)
}

func TestMatrix4TransformPoint(t *testing.T) {
	m := Translate(1, 2, 3)
	assert.Equal(t, NewVector3(2, 3, 4), m.TransformPoint3(NewVector3(1, 1, 1)))

	// w = 0 directions ignore translation
	assert.Equal(t, NewVector4(1, 1, 1, 0), m.TransformPoint4(NewVector4(1, 1, 1, 0)))
	assert.Equal(t, NewVector4(2, 3, 4, 1), m.TransformPoint4(NewVector4(1, 1, 1, 1)))

	// no perspective divide
	p := NewMatrix4(1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 2, 0, 0, 0, 1)
	assert.Equal(t, NewVector3(1, 2, 3), p.TransformPoint3(NewVector3(1, 2, 3)))
}

func TestMatrix4ElementWise(t *testing.T) {
	a := NewMatrix4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	b := a

	b.AddAssign(a)
	assert.Equal(t, a.MulScalar(2), b)
	b.SubAssign(a)
	assert.Equal(t, a, b)
	b.AddScalarAssign(1)
	assert.Equal(t, a.AddScalar(1), b)
	b.SubScalarAssign(1)
	b.MulScalarAssign(3)
	b.DivScalarAssign(3)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Sub(a.MulScalar(2)), a.Neg())
}

func TestMatrix4IsValid(t *testing.T) {
	assert.True(t, Matrix4Identity().IsValid())

	m := Matrix4Identity().DivScalar(0)
	assert.False(t, m.IsValid())

	m = Matrix4Identity()
	m.SetM24(float32(math.NaN()))
	assert.False(t, m.IsValid())
}

func TestMatrix4String(t *testing.T) {
	want := "[\n  1, 0, 0, 5\n  0, 1, 0, 6\n  0, 0, 1, 7\n  0, 0, 0, 1\n]"
	assert.Equal(t, want, Translate(5, 6, 7).String())
}

func TestTransformPoints(t *testing.T) {
	points := []Vector2{NewVector2(1, 0), NewVector2(0, 1)}
	TransformPoints(NewMatrix2(0, 1, -1, 0).TransformPoint, points)
	assert.Equal(t, []Vector2{NewVector2(0, 1), NewVector2(-1, 0)}, points)

	flat := []Vector3{NewVector3(1, 2, 3)}
	TransformPoints(NewMatrix3(2, 0, 0, 0, 2, 0, 0, 0, 2).TransformPoint3, flat)
	assert.Equal(t, NewVector3(2, 4, 6), flat[0])

	moved := []Vector3{Vector3Zero(), NewVector3(1, 1, 1)}
	TransformPoints(Translate(0, 0, -5).TransformPoint3, moved)
	assert.Equal(t, []Vector3{NewVector3(0, 0, -5), NewVector3(1, 1, -4)}, moved)
}
