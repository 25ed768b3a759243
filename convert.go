package vex

// TransformPoints replaces every point p with f(p). f is usually a matrix
// method value such as Matrix4.TransformPoint3 or Matrix2.TransformPoint.
func TransformPoints[V any](f func(V) V, points []V) {
	for i, p := range points {
		points[i] = f(p)
	}
}

// Vector2FromVector3 drops the z component.
func Vector2FromVector3(v Vector3) Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// Vector3FromVector2 extends v with z = 0.
func Vector3FromVector2(v Vector2) Vector3 {
	return Vector3{X: v.X, Y: v.Y}
}

// Vector3FromVector4 drops the w component.
func Vector3FromVector4(v Vector4) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Vector4FromVector3 extends v with w = 0.
func Vector4FromVector3(v Vector3) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z}
}
