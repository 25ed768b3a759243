package vex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func TestTranslateScale(t *testing.T) {
	assert.Equal(t, Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		1, 2, 3, 1,
	}, Translate(1, 2, 3))

	assert.Equal(t, Matrix4{
		1, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 3, 0,
		0, 0, 0, 1,
	}, Scale(1, 2, 3))

	p := Scale(2, 2, 2).TransformPoint3(NewVector3(1, 2, 3))
	assert.Equal(t, NewVector3(2, 4, 6), p)
}

func TestRotate(t *testing.T) {
	const quarter = math.Pi / 2
	tests := []struct {
		name string
		m    Matrix4
		in   Vector3
		want Vector3
	}{
		{"x: y to z", RotateX(quarter), Vector3Up(), NewVector3(0, 0, 1)},
		{"x: z to -y", RotateX(quarter), NewVector3(0, 0, 1), NewVector3(0, -1, 0)},
		{"y: z to x", RotateY(quarter), NewVector3(0, 0, 1), Vector3Right()},
		{"y: x to -z", RotateY(quarter), Vector3Right(), NewVector3(0, 0, -1)},
		{"z: x to -y", RotateZ(quarter), Vector3Right(), NewVector3(0, -1, 0)},
		{"z: y to x", RotateZ(quarter), Vector3Up(), Vector3Right()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint3(tt.in)
			assert.True(t, got.ApproxEqual(tt.want, tol), "got %v want %v", got, tt.want)
		})
	}
}

func TestRotateZClockwise(t *testing.T) {
	sin, cos := float32(math.Sin(0.5)), float32(math.Cos(0.5))
	m := RotateZ(0.5)
	assert.InDelta(t, cos, m.M11(), 1e-7)
	assert.InDelta(t, sin, m.M12(), 1e-7)
	assert.InDelta(t, -sin, m.M21(), 1e-7)
	assert.InDelta(t, cos, m.M22(), 1e-7)
	assert.True(t, m.Mul(RotateZ(-0.5)).ApproxEqual(Matrix4Identity(), 1e-6))
	assert.Equal(t, float32(1), m.M33())
}

func TestRotateIsOrthonormal(t *testing.T) {
	for _, m := range []Matrix4{RotateX(0.7), RotateY(-1.3), RotateZ(2.1)} {
		assert.InDelta(t, 1, m.Determinant(), tol)

		inv := m
		require.True(t, inv.Inverse())
		tr := m
		tr.Transpose()
		assert.True(t, inv.ApproxEqual(tr, tol))
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(90, 2, 1, 3)

	assert.InDelta(t, 0.5, m.M11(), tol)
	assert.InDelta(t, 1, m.M22(), tol)
	assert.Equal(t, float32(-2), m.M33())
	assert.Equal(t, float32(-3), m.M34())
	assert.Equal(t, float32(-1), m.M43())
	assert.Equal(t, float32(0), m.M44())

	ndc := func(z float32) float32 {
		clip := m.TransformPoint4(NewVector4(0, 0, z, 1))
		return clip.Z / clip.W
	}
	assert.InDelta(t, -1, ndc(-1), tol)
	assert.InDelta(t, 1, ndc(-3), tol)
}

func TestOrtho(t *testing.T) {
	m := Ortho(0, 800, 0, 600, -1, 1)

	topLeft := m.TransformPoint3(NewVector3(0, 0, 0))
	assert.True(t, topLeft.ApproxEqual(NewVector3(-1, 1, 0), tol), "%v", topLeft)

	bottomRight := m.TransformPoint3(NewVector3(800, 600, 0))
	assert.True(t, bottomRight.ApproxEqual(NewVector3(1, -1, 0), tol), "%v", bottomRight)

	unit := Ortho(-1, 1, 1, -1, 0, 2)
	assert.InDelta(t, -1, unit.TransformPoint3(NewVector3(0, 0, 0)).Z, tol)
	assert.InDelta(t, 1, unit.TransformPoint3(NewVector3(0, 0, -2)).Z, tol)
}

func TestLookAt(t *testing.T) {
	position := NewVector3(0, 1, 1)
	m := LookAt(position, Vector3Zero(), Vector3Up())

	const h = 0.70710677
	want := NewMatrix4(
		1, 0, 0, 0,
		0, h, -h, 0,
		0, h, h, 0,
		0, 1, 1, 1,
	)
	assert.True(t, m.ApproxEqual(want, tol), "%v", m)

	rot := LookAtMatrix3(position, Vector3Zero(), Vector3Up())
	assert.True(t, rot.ApproxEqual(NewMatrix3(1, 0, 0, 0, h, -h, 0, h, h), tol), "%v", rot)

	view := m
	require.True(t, view.Inverse())
	eye := view.TransformPoint3(position)
	assert.True(t, eye.ApproxEqual(Vector3Zero(), tol), "%v", eye)

	target := view.TransformPoint3(Vector3Zero())
	assert.True(t, target.ApproxEqual(NewVector3(0, 0, -float32(math.Sqrt2)), tol), "%v", target)
}

func TestLookAtDegenerate(t *testing.T) {
	// up parallel to the view direction has no defined right axis
	m := LookAt(Vector3Zero(), NewVector3(0, 5, 0), Vector3Up())
	assert.Equal(t, Vector3Zero(), NewVector3(m.M11(), m.M21(), m.M31()))
}
