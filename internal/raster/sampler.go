package raster

import (
	"image"
	"math"

	"vex"
)

// tap is one texel contributing to a filtered sample.
type tap struct {
	x, y   int
	weight float32
}

// SampleTexture filters tex bilinearly at uv, repeating the texture on both
// axes. v = 0 is the top row.
func SampleTexture(tex *image.NRGBA, uv vex.Vector2) (r, g, b, a uint8) {
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	p := vex.NewVector2(wrapUnit(uv.X), wrapUnit(uv.Y)).
		Mul(vex.NewVector2(float32(w-1), float32(h-1)))

	x0, y0 := int(p.X), int(p.Y)
	x1, y1 := (x0+1)%w, (y0+1)%h
	fx, fy := p.X-float32(x0), p.Y-float32(y0)
	taps := [4]tap{
		{x0, y0, (1 - fx) * (1 - fy)},
		{x1, y0, fx * (1 - fy)},
		{x0, y1, (1 - fx) * fy},
		{x1, y1, fx * fy},
	}

	var sum [4]float32
	for _, t := range taps {
		texel := tex.Pix[tex.PixOffset(tex.Rect.Min.X+t.x, tex.Rect.Min.Y+t.y):]
		for c := range sum {
			sum[c] += float32(texel[c]) * t.weight
		}
	}
	return clamp255(sum[0]), clamp255(sum[1]), clamp255(sum[2]), clamp255(sum[3])
}

// wrapUnit maps f into [0, 1).
func wrapUnit(f float32) float32 {
	f -= float32(math.Floor(float64(f)))
	if f >= 1 {
		return 0
	}
	return f
}

// AverageColor returns the mean RGB of tex with full alpha. Faces without
// texture coordinates are painted with it.
func AverageColor(tex *image.NRGBA) (uint8, uint8, uint8, uint8) {
	b := tex.Bounds()
	if b.Empty() {
		return 160, 160, 170, 255
	}

	var sum [3]float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := tex.Pix[tex.PixOffset(b.Min.X, y):tex.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			sum[0] += float64(row[i])
			sum[1] += float64(row[i+1])
			sum[2] += float64(row[i+2])
		}
	}
	n := float64(b.Dx() * b.Dy())
	return uint8(sum[0]/n + 0.5), uint8(sum[1]/n + 0.5), uint8(sum[2]/n + 0.5), 255
}
