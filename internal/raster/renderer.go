package raster

import (
	"fmt"
	"image"
	"image/color"

	"vex"
	"vex/internal/camera"
	"vex/internal/mesh"
	"vex/internal/texture"
)

// Object is one mesh instance in a render.
type Object struct {
	Mesh  *mesh.Mesh
	Model vex.Matrix4
	Color color.NRGBA // base colour when untextured; zero means neutral grey
	Blend Blend
}

// Options controls a single render.
type Options struct {
	Size        int // output edge length before supersampling
	Supersample int
	Background  color.NRGBA
	Light       *LightConfig // nil: DefaultLightConfig aimed along the camera
	Wireframe   color.Color  // nil: no overlay
	LineWidth   float32      // wireframe width in output pixels, default 1
}

var defaultBase = color.NRGBA{R: 160, G: 160, B: 170, A: 255}

// Render rasterises objects seen through cam into a square image of
// Size × Supersample pixels. The caller downsamples.
func Render(objects []Object, cam camera.Camera, resolver texture.Resolver, opts Options) (*image.NRGBA, error) {
	ss := max(opts.Supersample, 1)
	renderSize := opts.Size * ss
	if renderSize <= 0 {
		return nil, fmt.Errorf("raster: invalid size %d", opts.Size)
	}

	vp, err := cam.ViewProjection(1)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}

	var lc LightConfig
	if opts.Light != nil {
		lc = *opts.Light
	} else {
		lc = DefaultLightConfig()
		lc.SetView(cam.Target.Sub(cam.Position))
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	fb.Fill(opts.Background)

	screens := make([][]vex.Vector3, len(objects))
	for oi, obj := range objects {
		m := obj.Mesh
		if m == nil || len(m.Positions) == 0 || !m.Valid() {
			continue
		}

		screen := camera.ProjectMVP(m.Positions, vp.Mul(obj.Model), renderSize, renderSize)
		screens[oi] = screen

		world := make([]vex.Vector3, len(m.Positions))
		for i, p := range m.Positions {
			world[i] = obj.Model.TransformPoint3(p)
		}

		// Load texture
		var tex *image.NRGBA
		if resolver != nil && m.TexPath != "" {
			tex = resolver.Resolve(m.TexPath)
		}

		base := obj.Color
		if base.A == 0 {
			base = defaultBase
		}
		// Faces without UVs on a textured mesh take the texture's average
		if tex != nil {
			base.R, base.G, base.B, base.A = AverageColor(tex)
		}

		s := Surface{Base: base, Blend: obj.Blend}
		for _, tri := range m.Tris {
			p0 := world[tri.V[0]]
			n := world[tri.V[1]].Sub(p0).Cross(world[tri.V[2]].Sub(p0))
			if n.Normalize() < 1e-12 {
				continue
			}
			s.Shade = lc.ComputeShade(n)

			s.Tex = nil
			s.HasUV = false
			if tex != nil && uvInRange(tri.T, len(m.UVs)) {
				s.Tex = tex
				s.HasUV = true
				s.UV = [3]vex.Vector2{m.UVs[tri.T[0]], m.UVs[tri.T[1]], m.UVs[tri.T[2]]}
			}

			RasterizeTriangle(fb, [3]vex.Vector3{screen[tri.V[0]], screen[tri.V[1]], screen[tri.V[2]]}, &s, &lc)
		}
	}

	img := fb.Image()
	if opts.Wireframe != nil {
		width := opts.LineWidth
		if width <= 0 {
			width = 1
		}
		for oi, obj := range objects {
			if screens[oi] != nil {
				DrawWireframe(img, screens[oi], obj.Mesh.Tris, opts.Wireframe, width*float32(ss))
			}
		}
	}
	return img, nil
}

func uvInRange(t [3]int, n int) bool {
	for _, i := range t {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}
