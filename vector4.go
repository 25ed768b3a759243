package vex

import "fmt"

// Vector4 is a 4-component vector (value type). It has no cross product.
type Vector4 struct {
	X, Y, Z, W float32
}

// NewVector4 creates a vector from the provided components.
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4Zero returns <0, 0, 0, 0>.
func Vector4Zero() Vector4 { return Vector4{} }

// Vector4One returns <1, 1, 1, 1>.
func Vector4One() Vector4 { return Vector4{X: 1, Y: 1, Z: 1, W: 1} }

// Set overwrites all components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetZero sets all components to 0.
func (v *Vector4) SetZero() {
	*v = Vector4{}
}

// Dot returns the dot product of two vectors.
func (v Vector4) Dot(w Vector4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Min returns the component-wise minimum.
func (v Vector4) Min(w Vector4) Vector4 {
	return Vector4{
		X: min32(v.X, w.X),
		Y: min32(v.Y, w.Y),
		Z: min32(v.Z, w.Z),
		W: min32(v.W, w.W),
	}
}

// Max returns the component-wise maximum.
func (v Vector4) Max(w Vector4) Vector4 {
	return Vector4{
		X: max32(v.X, w.X),
		Y: max32(v.Y, w.Y),
		Z: max32(v.Z, w.Z),
		W: max32(v.W, w.W),
	}
}

// Clamp limits each component to the range spanned by a and b.
// The bounds may be given in either order.
func (v *Vector4) Clamp(a, b Vector4) {
	low := a.Min(b)
	high := a.Max(b)
	*v = low.Max(v.Min(high))
}

// Magnitude returns the length of the vector.
func (v Vector4) Magnitude() float32 {
	return sqrt32(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the vector.
func (v Vector4) MagnitudeSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize scales the vector to unit length and returns its previous length.
// Vectors not longer than Epsilon are left unchanged and 0 is returned.
func (v *Vector4) Normalize() float32 {
	length := v.Magnitude()
	if length <= Epsilon {
		return 0
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
	v.W /= length
	return length
}

// Abs replaces each component with its absolute value.
func (v *Vector4) Abs() {
	v.X = abs32(v.X)
	v.Y = abs32(v.Y)
	v.Z = abs32(v.Z)
	v.W = abs32(v.W)
}

// Index returns component i (0..3 = X, Y, Z, W). It panics for any other i.
func (v Vector4) Index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("vex: invalid index for Vector4: %d", i))
}

// SetIndex sets component i (0..3 = X, Y, Z, W). It panics for any other i.
func (v *Vector4) SetIndex(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	case 3:
		v.W = f
	default:
		panic(fmt.Sprintf("vex: invalid index for Vector4: %d", i))
	}
}

// Neg returns the negated vector.
func (v Vector4) Neg() Vector4 {
	return Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Add returns the sum of two vectors.
func (v Vector4) Add(w Vector4) Vector4 {
	return Vector4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// AddScalar adds s to every component.
func (v Vector4) AddScalar(s float32) Vector4 {
	return Vector4{X: v.X + s, Y: v.Y + s, Z: v.Z + s, W: v.W + s}
}

// Sub returns the difference of two vectors.
func (v Vector4) Sub(w Vector4) Vector4 {
	return Vector4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// SubScalar subtracts s from every component.
func (v Vector4) SubScalar(s float32) Vector4 {
	return Vector4{X: v.X - s, Y: v.Y - s, Z: v.Z - s, W: v.W - s}
}

// Mul returns the component-wise product.
func (v Vector4) Mul(w Vector4) Vector4 {
	return Vector4{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z, W: v.W * w.W}
}

// MulScalar returns the vector scaled by s.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns the component-wise quotient.
func (v Vector4) Div(w Vector4) Vector4 {
	return Vector4{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z, W: v.W / w.W}
}

// DivScalar divides every component by s.
func (v Vector4) DivScalar(s float32) Vector4 {
	return Vector4{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Equal reports exact component-wise equality.
func (v Vector4) Equal(w Vector4) bool {
	return v == w
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vector4) ApproxEqual(w Vector4, eps float32) bool {
	return approx32(v.X, w.X, eps) && approx32(v.Y, w.Y, eps) &&
		approx32(v.Z, w.Z, eps) && approx32(v.W, w.W, eps)
}

// IsValid reports whether every component is finite.
func (v Vector4) IsValid() bool {
	return IsValid(v.X) && IsValid(v.Y) && IsValid(v.Z) && IsValid(v.W)
}

func (v Vector4) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", v.X, v.Y, v.Z, v.W)
}
