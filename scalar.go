package vex

import "math"

// Epsilon is the difference between 1 and the next representable float32.
const Epsilon float32 = 1.1920929e-07

// IsValid reports whether x is a finite number (not NaN, not ±Inf).
func IsValid(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NextPowerOfTwo returns the power of two strictly above the highest set bit
// of x, so NextPowerOfTwo(2) == 4.
func NextPowerOfTwo(x int32) int32 {
	r := x
	r |= r >> 1
	r |= r >> 2
	r |= r >> 4
	r |= r >> 8
	r |= r >> 16
	return r + 1
}

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo(x int32) bool {
	return x > 0 && x&(x-1) == 0
}

// Sign returns 1 for x >= 0 (including -0) and -1 otherwise.
func Sign(x float32) float32 {
	if x >= 0 {
		return 1
	}
	return -1
}

// ToRadians converts degrees to radians.
func ToRadians(deg float32) float32 {
	return deg * (math.Pi / 180)
}

func sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func abs32(x float32) float32 { return math.Float32frombits(math.Float32bits(x) &^ (1 << 31)) }

func sincos32(a float32) (sin, cos float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

// min32 and max32 ignore a NaN operand and return the other one; only two
// NaNs give NaN.
func min32(a, b float32) float32 {
	switch {
	case math.IsNaN(float64(a)):
		return b
	case math.IsNaN(float64(b)):
		return a
	}
	return float32(math.Min(float64(a), float64(b)))
}

func max32(a, b float32) float32 {
	switch {
	case math.IsNaN(float64(a)):
		return b
	case math.IsNaN(float64(b)):
		return a
	}
	return float32(math.Max(float64(a), float64(b)))
}

func approx32(a, b, eps float32) bool {
	return abs32(a-b) <= eps
}
