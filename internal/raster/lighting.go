package raster

import (
	"math"

	"vex"
)

// LightConfig holds precomputed lighting parameters. Directions are in world
// space and point from the surface toward the light.
type LightConfig struct {
	LightDir  vex.Vector3
	RimDir    vex.Vector3
	ViewDir   vex.Vector3
	HalfMain  vex.Vector3 // precomputed half-vector for Blinn-Phong
	Ambient   float32
	Hemi      float32
	Direct    float32
	Rim       float32
	SpecInt   float32
	SpecPow   float32
	Exposure  float32
	SRGBGamma float32
	InvGamma  float32
}

// DefaultLightConfig returns a key light from the upper right, a rim light
// from behind and a viewer looking down -z.
func DefaultLightConfig() LightConfig {
	lc := LightConfig{
		LightDir:  unit(vex.NewVector3(180, 260, 140)),
		RimDir:    unit(vex.NewVector3(-160, 130, -210)),
		Ambient:   0.55,
		Hemi:      0.50,
		Direct:    1.50,
		Rim:       0.60,
		SpecInt:   0.45,
		SpecPow:   12.0,
		Exposure:  1.05,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
	lc.SetView(vex.Vector3Forward())
	return lc
}

// SetView points the viewer along dir and recomputes the half-vector.
func (lc *LightConfig) SetView(dir vex.Vector3) {
	lc.ViewDir = unit(dir)
	lc.HalfMain = unit(lc.LightDir.Sub(lc.ViewDir))
}

// ComputeShade returns the combined lighting scalar for a face normal.
func (lc *LightConfig) ComputeShade(normal vex.Vector3) float32 {
	// Lambertian (abs for double-sided)
	ndlMain := abs32(normal.Dot(lc.LightDir))
	ndlRim := abs32(normal.Dot(lc.RimDir))

	// Hemisphere fill
	hemi := (1.0-abs32(normal.Y))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := float32(math.Pow(float64(ndh), float64(lc.SpecPow))) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Shade lights an sRGB texel: decode to linear, scale by shade and exposure,
// tone map and encode back to sRGB.
func (lc *LightConfig) Shade(r, g, b uint8, shade float32) (uint8, uint8, uint8) {
	k := shade * lc.Exposure
	return lc.encode(srgbToLinear[r] * k), lc.encode(srgbToLinear[g] * k), lc.encode(srgbToLinear[b] * k)
}

func (lc *LightConfig) encode(linear float32) uint8 {
	t := ACESTonemap(linear)
	return clamp255(float32(math.Pow(float64(t), float64(lc.InvGamma))) * 255)
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float32

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = float32(math.Pow(float64(i)/255.0, 2.2))
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float32) float32 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func unit(v vex.Vector3) vex.Vector3 {
	v.Normalize()
	return v
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
