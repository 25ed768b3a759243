package vex

import "fmt"

// Vector3 is a 3-component vector (value type).
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 creates a vector from the provided components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Zero returns <0, 0, 0>.
func Vector3Zero() Vector3 { return Vector3{} }

// Vector3One returns <1, 1, 1>.
func Vector3One() Vector3 { return Vector3{X: 1, Y: 1, Z: 1} }

// Vector3Right returns <1, 0, 0>.
func Vector3Right() Vector3 { return Vector3{X: 1} }

// Vector3Up returns <0, 1, 0>.
func Vector3Up() Vector3 { return Vector3{Y: 1} }

// Vector3Forward returns <0, 0, -1>; forward points down the negative z axis.
func Vector3Forward() Vector3 { return Vector3{Z: -1} }

// Set overwrites all components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetZero sets all components to 0.
func (v *Vector3) SetZero() {
	*v = Vector3{}
}

// Dot returns the dot product of two vectors.
func (v Vector3) Dot(w Vector3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Min returns the component-wise minimum.
func (v Vector3) Min(w Vector3) Vector3 {
	return Vector3{X: min32(v.X, w.X), Y: min32(v.Y, w.Y), Z: min32(v.Z, w.Z)}
}

// Max returns the component-wise maximum.
func (v Vector3) Max(w Vector3) Vector3 {
	return Vector3{X: max32(v.X, w.X), Y: max32(v.Y, w.Y), Z: max32(v.Z, w.Z)}
}

// Clamp limits each component to the range spanned by a and b.
// The bounds may be given in either order.
func (v *Vector3) Clamp(a, b Vector3) {
	low := a.Min(b)
	high := a.Max(b)
	*v = low.Max(v.Min(high))
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float32 {
	return sqrt32(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the vector.
func (v Vector3) MagnitudeSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize scales the vector to unit length and returns its previous length.
// Vectors not longer than Epsilon are left unchanged and 0 is returned.
func (v *Vector3) Normalize() float32 {
	length := v.Magnitude()
	if length <= Epsilon {
		return 0
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
	return length
}

// Abs replaces each component with its absolute value.
func (v *Vector3) Abs() {
	v.X = abs32(v.X)
	v.Y = abs32(v.Y)
	v.Z = abs32(v.Z)
}

// Index returns component i (0 = X, 1 = Y, 2 = Z). It panics for any other i.
func (v Vector3) Index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vex: invalid index for Vector3: %d", i))
}

// SetIndex sets component i (0 = X, 1 = Y, 2 = Z). It panics for any other i.
func (v *Vector3) SetIndex(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	default:
		panic(fmt.Sprintf("vex: invalid index for Vector3: %d", i))
	}
}

// Neg returns the negated vector.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Add returns the sum of two vectors.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// AddScalar adds s to every component.
func (v Vector3) AddScalar(s float32) Vector3 {
	return Vector3{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// Sub returns the difference of two vectors.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// SubScalar subtracts s from every component.
func (v Vector3) SubScalar(s float32) Vector3 {
	return Vector3{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// Mul returns the component-wise product.
func (v Vector3) Mul(w Vector3) Vector3 {
	return Vector3{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// MulScalar returns the vector scaled by s.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the component-wise quotient.
func (v Vector3) Div(w Vector3) Vector3 {
	return Vector3{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z}
}

// DivScalar divides every component by s.
func (v Vector3) DivScalar(s float32) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Equal reports exact component-wise equality.
func (v Vector3) Equal(w Vector3) bool {
	return v == w
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vector3) ApproxEqual(w Vector3, eps float32) bool {
	return approx32(v.X, w.X, eps) && approx32(v.Y, w.Y, eps) && approx32(v.Z, w.Z, eps)
}

// IsValid reports whether every component is finite.
func (v Vector3) IsValid() bool {
	return IsValid(v.X) && IsValid(v.Y) && IsValid(v.Z)
}

func (v Vector3) String() string {
	return fmt.Sprintf("<%v, %v, %v>", v.X, v.Y, v.Z)
}
