package vex

// Factories for common 3D transforms. They assume a right-handed coordinate
// system with column vectors (p' = M × p), the camera looking down -z and
// clip space depth in [-1, 1]. Inputs are not validated: a zero-width
// frustum or a collinear up vector yields NaN or ±Inf elements.

// Ortho returns an orthographic projection of the given box into clip space.
func Ortho(left, right, top, bottom, near, far float32) Matrix4 {
	width := right - left
	height := top - bottom
	depth := far - near

	m := Matrix4Identity()
	m.SetM11(2 / width)
	m.SetM22(2 / height)
	m.SetM33(-2 / depth)
	m.SetM14(-(right + left) / width)
	m.SetM24(-(top + bottom) / height)
	m.SetM34(-(far + near) / depth)
	return m
}

// Perspective returns a perspective projection. fov is the full vertical
// field of view in degrees and aspect is width / height.
func Perspective(fov, aspect, near, far float32) Matrix4 {
	sin, cos := sincos32(ToRadians(fov / 2))
	cotangent := cos / sin
	depth := far - near

	m := Matrix4Identity()
	m.SetM11(cotangent / aspect)
	m.SetM22(cotangent)
	m.SetM33(-(far + near) / depth)
	m.SetM34(-2 * near * far / depth)
	m.SetM43(-1)
	m.SetM44(0)
	return m
}

// lookAtBasis returns the orthonormal camera axes for an eye at position
// looking towards target.
func lookAtBasis(position, target, up Vector3) (right, trueUp, back Vector3) {
	forward := target.Sub(position)
	forward.Normalize()

	right = forward.Cross(up)
	right.Normalize()
	trueUp = right.Cross(forward)
	return right, trueUp, forward.Neg()
}

// LookAt returns the world transform of a camera at position facing target.
// Its columns are the camera's right, up and backward axes followed by the
// position, so the inverse of the result is the view matrix.
func LookAt(position, target, up Vector3) Matrix4 {
	right, u, back := lookAtBasis(position, target, up)
	return NewMatrix4(
		right.X, right.Y, right.Z, 0,
		u.X, u.Y, u.Z, 0,
		back.X, back.Y, back.Z, 0,
		position.X, position.Y, position.Z, 1,
	)
}

// LookAtMatrix3 returns only the rotation part of LookAt.
func LookAtMatrix3(position, target, up Vector3) Matrix3 {
	right, u, back := lookAtBasis(position, target, up)
	return NewMatrix3(
		right.X, right.Y, right.Z,
		u.X, u.Y, u.Z,
		back.X, back.Y, back.Z,
	)
}

// Translate returns a translation by (x, y, z).
func Translate(x, y, z float32) Matrix4 {
	m := Matrix4Identity()
	m.SetM14(x)
	m.SetM24(y)
	m.SetM34(z)
	return m
}

// RotateX returns a counter-clockwise rotation about the x axis.
func RotateX(angle float32) Matrix4 {
	sin, cos := sincos32(angle)
	m := Matrix4Identity()
	m.SetM22(cos)
	m.SetM32(sin)
	m.SetM23(-sin)
	m.SetM33(cos)
	return m
}

// RotateY returns a counter-clockwise rotation about the y axis.
func RotateY(angle float32) Matrix4 {
	sin, cos := sincos32(angle)
	m := Matrix4Identity()
	m.SetM11(cos)
	m.SetM13(sin)
	m.SetM31(-sin)
	m.SetM33(cos)
	return m
}

// RotateZ returns a rotation about the z axis. Unlike RotateX and RotateY
// it turns clockwise looking down the axis: a positive angle moves +x
// towards -y.
func RotateZ(angle float32) Matrix4 {
	sin, cos := sincos32(angle)
	m := Matrix4Identity()
	m.SetM11(cos)
	m.SetM21(-sin)
	m.SetM12(sin)
	m.SetM22(cos)
	return m
}

// Scale returns a scale by (x, y, z).
func Scale(x, y, z float32) Matrix4 {
	m := Matrix4Identity()
	m.SetM11(x)
	m.SetM22(y)
	m.SetM33(z)
	return m
}
