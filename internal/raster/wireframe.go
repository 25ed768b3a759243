package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"vex"
	"vex/internal/mesh"
)

// DrawWireframe strokes every triangle edge of a projected mesh onto img as
// an anti-aliased line of the given pixel width. Edges touching a culled
// (NaN) vertex are skipped.
func DrawWireframe(img draw.Image, screen []vex.Vector3, tris []mesh.Triangle, c color.Color, width float32) {
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	half := width / 2

	n := 0
	for _, t := range tris {
		for k := 0; k < 3; k++ {
			i, j := t.V[k], t.V[(k+1)%3]
			if i < 0 || j < 0 || i >= len(screen) || j >= len(screen) {
				continue
			}
			if strokeEdge(z, screen[i], screen[j], half) {
				n++
			}
		}
	}
	if n == 0 {
		return
	}
	z.Draw(img, b, image.NewUniform(c), image.Point{})
}

// strokeEdge adds a thin quad covering a-b to the rasterizer path.
func strokeEdge(z *vector.Rasterizer, a, b vex.Vector3, half float32) bool {
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	d := vex.NewVector2(b.X-a.X, b.Y-a.Y)
	if d.Normalize() == 0 {
		return false
	}
	// perpendicular scaled to half the stroke width
	n := vex.NewVector2(-d.Y, d.X).MulScalar(half)

	z.MoveTo(a.X+n.X, a.Y+n.Y)
	z.LineTo(b.X+n.X, b.Y+n.Y)
	z.LineTo(b.X-n.X, b.Y-n.Y)
	z.LineTo(a.X-n.X, a.Y-n.Y)
	z.ClosePath()
	return true
}
