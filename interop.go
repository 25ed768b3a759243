package vex

import "golang.org/x/image/math/f32"

// Conversions to and from golang.org/x/image/math/f32. Note that f32.Mat3
// and f32.Mat4 are row-major, so matrix conversions reorder elements.

func (v Vector2) F32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }
func (v Vector3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }
func (v Vector4) F32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

func Vector2FromF32(v f32.Vec2) Vector2 { return Vector2{X: v[0], Y: v[1]} }
func Vector3FromF32(v f32.Vec3) Vector3 { return Vector3{X: v[0], Y: v[1], Z: v[2]} }
func Vector4FromF32(v f32.Vec4) Vector4 { return Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]} }

// F32 returns the matrix in row-major order.
func (m Matrix3) F32() f32.Mat3 {
	var out f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = m[3*c+r]
		}
	}
	return out
}

// Matrix3FromF32 converts a row-major f32.Mat3.
func Matrix3FromF32(a f32.Mat3) Matrix3 {
	var m Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[3*c+r] = a[3*r+c]
		}
	}
	return m
}

// F32 returns the matrix in row-major order.
func (m Matrix4) F32() f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = m[4*c+r]
		}
	}
	return out
}

// Matrix4FromF32 converts a row-major f32.Mat4.
func Matrix4FromF32(a f32.Mat4) Matrix4 {
	var m Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[4*c+r] = a[4*r+c]
		}
	}
	return m
}
