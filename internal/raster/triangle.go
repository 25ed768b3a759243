package raster

import (
	"image"
	"image/color"

	"vex"
)

// Blend selects how a rasterised pixel combines with the frame buffer.
type Blend int

const (
	// BlendOpaque depth-tests and overwrites.
	BlendOpaque Blend = iota
	// BlendAdditive skips the depth buffer and adds to the existing colour.
	BlendAdditive
)

// Surface is the per-triangle material input to RasterizeTriangle.
type Surface struct {
	Tex   *image.NRGBA // nil: use Base
	UV    [3]vex.Vector2
	HasUV bool
	Base  color.NRGBA
	Shade float32
	Blend Blend
}

// RasterizeTriangle fills one screen-space triangle. p holds pixel x, y and
// NDC depth z for each corner; corners with NaN components (behind the eye)
// drop the whole triangle, as do fragments outside the [-1, 1] depth range.
//
// This is the HOT PATH: no allocation in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, p [3]vex.Vector3, s *Surface, lc *LightConfig) {
	for _, v := range p {
		if !v.IsValid() {
			return
		}
	}
	x0, y0, z0 := p[0].X, p[0].Y, p[0].Z
	x1, y1, z1 := p[1].X, p[1].Y, p[1].Z
	x2, y2, z2 := p[2].X, p[2].Y, p[2].Z

	// Bounding box
	minX := clampInt(int(min(x0, x1, x2)), 0, fb.Width-1)
	maxX := clampInt(int(max(x0, x1, x2))+1, 0, fb.Width-1)
	minY := clampInt(int(min(y0, y1, y2)), 0, fb.Height-1)
	maxY := clampInt(int(max(y0, y1, y2))+1, 0, fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	hasUV := s.Tex != nil && s.HasUV
	uv0, uv1, uv2 := s.UV[0], s.UV[1], s.UV[2]
	additive := s.Blend == BlendAdditive

	for sy := minY; sy <= maxY; sy++ {
		dsy := float32(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float32(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			if z < -1 || z > 1 {
				continue
			}
			idx := rowOff + sx
			if !additive && z >= fb.Depth[idx] {
				continue
			}

			var cr, cg, cb, ca uint8
			if hasUV {
				uv := uv0.MulScalar(w0).Add(uv1.MulScalar(w1)).Add(uv2.MulScalar(w2))
				cr, cg, cb, ca = SampleTexture(s.Tex, uv)
			} else {
				cr, cg, cb, ca = s.Base.R, s.Base.G, s.Base.B, s.Base.A
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			r, g, b := lc.Shade(cr, cg, cb, s.Shade)

			px := idx * 4
			if additive {
				fb.Color[px] = clamp255(float32(fb.Color[px]) + float32(r))
				fb.Color[px+1] = clamp255(float32(fb.Color[px+1]) + float32(g))
				fb.Color[px+2] = clamp255(float32(fb.Color[px+2]) + float32(b))
				// Alpha follows brightness so dark additions stay transparent
				lum := clamp255(float32(r)*0.299 + float32(g)*0.587 + float32(b)*0.114)
				if lum > fb.Color[px+3] {
					fb.Color[px+3] = lum
				}
				continue
			}

			fb.Depth[idx] = z
			fb.Color[px] = r
			fb.Color[px+1] = g
			fb.Color[px+2] = b
			fb.Color[px+3] = ca
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
