// Package vex provides fixed-size float32 vectors and square matrices for 3D
// graphics: Vector2, Vector3, Vector4, Matrix2, Matrix3 and Matrix4.
//
// Vectors are plain structs. Matrices are flat arrays in column-major order,
// so a Matrix4 can be handed to a graphics API uniform as-is. Elements are
// addressed with 1-indexed row/column accessors:
//
//	m := vex.NewMatrix3(
//	    1, 2, 3, // column 1: m11, m21, m31
//	    4, 5, 6, // column 2: m12, m22, m32
//	    7, 8, 9, // column 3: m13, m23, m33
//	)
//	m.M13() // 7
//
// Scalar arithmetic on matrices is element-wise while Matrix.Mul is true
// matrix multiplication.
//
// Numeric degeneracies are not prevented. Inverse reports a zero determinant
// by returning false and leaving the receiver untouched; Normalize ignores
// vectors shorter than Epsilon. Every other NaN or infinity propagates and
// can be detected afterwards with IsValid.
package vex
