package vex

import "fmt"

// Vector2 is a 2-component vector (value type).
type Vector2 struct {
	X, Y float32
}

// NewVector2 creates a vector from the provided components.
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Zero returns <0, 0>.
func Vector2Zero() Vector2 { return Vector2{} }

// Vector2One returns <1, 1>.
func Vector2One() Vector2 { return Vector2{X: 1, Y: 1} }

// Vector2CrossSV returns the cross product of a scalar (left) and a vector.
func Vector2CrossSV(s float32, v Vector2) Vector2 {
	return Vector2{X: -s * v.Y, Y: s * v.X}
}

// Vector2CrossVS returns the cross product of a vector and a scalar (right).
func Vector2CrossVS(v Vector2, s float32) Vector2 {
	return Vector2{X: s * v.Y, Y: -s * v.X}
}

// Set overwrites both components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetZero sets both components to 0.
func (v *Vector2) SetZero() {
	*v = Vector2{}
}

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(w Vector2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vector2) Cross(w Vector2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Min returns the component-wise minimum.
func (v Vector2) Min(w Vector2) Vector2 {
	return Vector2{X: min32(v.X, w.X), Y: min32(v.Y, w.Y)}
}

// Max returns the component-wise maximum.
func (v Vector2) Max(w Vector2) Vector2 {
	return Vector2{X: max32(v.X, w.X), Y: max32(v.Y, w.Y)}
}

// Clamp limits each component to the range spanned by a and b.
// The bounds may be given in either order.
func (v *Vector2) Clamp(a, b Vector2) {
	low := a.Min(b)
	high := a.Max(b)
	*v = low.Max(v.Min(high))
}

// Magnitude returns the length of the vector.
func (v Vector2) Magnitude() float32 {
	return sqrt32(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the vector.
// This is cheaper than Magnitude when only comparing lengths.
func (v Vector2) MagnitudeSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize scales the vector to unit length and returns its previous length.
// Vectors not longer than Epsilon are left unchanged and 0 is returned.
func (v *Vector2) Normalize() float32 {
	length := v.Magnitude()
	if length <= Epsilon {
		return 0
	}
	v.X /= length
	v.Y /= length
	return length
}

// Abs replaces each component with its absolute value.
func (v *Vector2) Abs() {
	v.X = abs32(v.X)
	v.Y = abs32(v.Y)
}

// Skew rotates the vector by +90 degrees: (x, y) -> (-y, x).
func (v *Vector2) Skew() {
	v.X, v.Y = -v.Y, v.X
}

// Index returns component i (0 = X, 1 = Y). It panics for any other i.
func (v Vector2) Index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("vex: invalid index for Vector2: %d", i))
}

// SetIndex sets component i (0 = X, 1 = Y). It panics for any other i.
func (v *Vector2) SetIndex(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	default:
		panic(fmt.Sprintf("vex: invalid index for Vector2: %d", i))
	}
}

// Neg returns the negated vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Add returns the sum of two vectors.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// AddScalar adds s to every component.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vector2{X: v.X + s, Y: v.Y + s}
}

// Sub returns the difference of two vectors.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// SubScalar subtracts s from every component.
func (v Vector2) SubScalar(s float32) Vector2 {
	return Vector2{X: v.X - s, Y: v.Y - s}
}

// Mul returns the component-wise product.
func (v Vector2) Mul(w Vector2) Vector2 {
	return Vector2{X: v.X * w.X, Y: v.Y * w.Y}
}

// MulScalar returns the vector scaled by s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns the component-wise quotient.
func (v Vector2) Div(w Vector2) Vector2 {
	return Vector2{X: v.X / w.X, Y: v.Y / w.Y}
}

// DivScalar divides every component by s.
func (v Vector2) DivScalar(s float32) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Equal reports exact component-wise equality.
func (v Vector2) Equal(w Vector2) bool {
	return v == w
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vector2) ApproxEqual(w Vector2, eps float32) bool {
	return approx32(v.X, w.X, eps) && approx32(v.Y, w.Y, eps)
}

// IsValid reports whether every component is finite.
func (v Vector2) IsValid() bool {
	return IsValid(v.X) && IsValid(v.Y)
}

func (v Vector2) String() string {
	return fmt.Sprintf("<%v, %v>", v.X, v.Y)
}
