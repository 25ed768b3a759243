package vex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Axes(t *testing.T) {
	assert.Equal(t, NewVector3(1, 0, 0), Vector3Right())
	assert.Equal(t, NewVector3(0, 1, 0), Vector3Up())
	assert.Equal(t, NewVector3(0, 0, -1), Vector3Forward())
	assert.Equal(t, NewVector3(1, 1, 1), Vector3One())
	assert.Equal(t, Vector3{}, Vector3Zero())
}

func TestVector3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector3
		want Vector3
	}{
		{"z cross x", NewVector3(0, 0, 1), NewVector3(1, 0, 0), NewVector3(0, 1, 0)},
		{"x cross y", NewVector3(1, 0, 0), NewVector3(0, 1, 0), NewVector3(0, 0, 1)},
		{"y cross z", NewVector3(0, 1, 0), NewVector3(0, 0, 1), NewVector3(1, 0, 0)},
		{"parallel", NewVector3(2, 4, 6), NewVector3(1, 2, 3), NewVector3(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Cross(tt.b))
		})
	}
}

func TestVector3Dot(t *testing.T) {
	assert.Equal(t, float32(32), NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6)))
	assert.Equal(t, float32(0), Vector3Right().Dot(Vector3Up()))
}

func TestVector3Clamp(t *testing.T) {
	v := NewVector3(-5, 0.5, 5)
	v.Clamp(NewVector3(1, 1, 1), NewVector3(0, 0, 0))
	assert.Equal(t, NewVector3(0, 0.5, 1), v)
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(0, 3, 4)
	assert.Equal(t, float32(5), v.Normalize())
	assert.Equal(t, NewVector3(0, 0.6, 0.8), v)

	zero := Vector3Zero()
	assert.Equal(t, float32(0), zero.Normalize())
	assert.Equal(t, Vector3Zero(), zero)
}

func TestVector3Index(t *testing.T) {
	v := NewVector3(1, 2, 3)
	for i, want := range []float32{1, 2, 3} {
		assert.Equal(t, want, v.Index(i))
	}
	v.SetIndex(2, 9)
	assert.Equal(t, float32(9), v.Z)
	assert.Panics(t, func() { v.Index(3) })
	assert.Panics(t, func() { v.SetIndex(-1, 0) })
}

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(2, 4, 6)
	b := NewVector3(1, 2, 3)

	assert.Equal(t, NewVector3(3, 6, 9), a.Add(b))
	assert.Equal(t, NewVector3(1, 2, 3), a.Sub(b))
	assert.Equal(t, NewVector3(2, 8, 18), a.Mul(b))
	assert.Equal(t, NewVector3(2, 2, 2), a.Div(b))
	assert.Equal(t, NewVector3(1, 2, 3), a.DivScalar(2))
	assert.Equal(t, NewVector3(4, 8, 12), a.MulScalar(2))
	assert.Equal(t, NewVector3(3, 5, 7), a.AddScalar(1))
	assert.Equal(t, NewVector3(1, 3, 5), a.SubScalar(1))
	assert.Equal(t, NewVector3(-2, -4, -6), a.Neg())

	v := NewVector3(-1, 2, -3)
	v.Abs()
	assert.Equal(t, NewVector3(1, 2, 3), v)
}

func TestVector3IsValid(t *testing.T) {
	assert.True(t, NewVector3(1, 2, 3).IsValid())
	assert.False(t, NewVector3(1, float32(math.NaN()), 3).IsValid())
	assert.False(t, NewVector3(1, 2, float32(math.Inf(-1))).IsValid())
}

func TestVector3String(t *testing.T) {
	assert.Equal(t, "<1, 2, 3>", NewVector3(1, 2, 3).String())
}
