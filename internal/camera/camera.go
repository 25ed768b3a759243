package camera

import (
	"errors"
	"math"

	"vex"
)

// ErrDegenerate is returned when the camera basis cannot be inverted, which
// happens when Up is parallel to the view direction or Position == Target.
var ErrDegenerate = errors.New("camera: degenerate view (up parallel to view direction?)")

// Camera describes a look-at camera with either a perspective or an
// orthographic lens.
type Camera struct {
	Position     vex.Vector3
	Target       vex.Vector3
	Up           vex.Vector3
	FOV          float32 // vertical, degrees
	Near         float32
	Far          float32
	Orthographic bool
	OrthoHeight  float32 // visible height in world units when Orthographic
}

// Default returns a camera slightly above the origin looking at it.
func Default() Camera {
	return Camera{
		Position:    vex.NewVector3(0, 1.5, 4),
		Target:      vex.Vector3Zero(),
		Up:          vex.Vector3Up(),
		FOV:         45,
		Near:        0.1,
		Far:         100,
		OrthoHeight: 4,
	}
}

// World returns the camera-to-world transform.
func (c Camera) World() vex.Matrix4 {
	return vex.LookAt(c.Position, c.Target, c.Up)
}

// View returns the world-to-camera transform.
func (c Camera) View() (vex.Matrix4, error) {
	m := c.World()
	if !m.IsValid() || !m.Inverse() {
		return vex.Matrix4{}, ErrDegenerate
	}
	return m, nil
}

// Projection returns the lens matrix for the given width / height ratio.
func (c Camera) Projection(aspect float32) vex.Matrix4 {
	if c.Orthographic {
		hh := c.OrthoHeight / 2
		hw := hh * aspect
		return vex.Ortho(-hw, hw, hh, -hh, c.Near, c.Far)
	}
	return vex.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjection returns Projection × View.
func (c Camera) ViewProjection(aspect float32) (vex.Matrix4, error) {
	view, err := c.View()
	if err != nil {
		return vex.Matrix4{}, err
	}
	return c.Projection(aspect).Mul(view), nil
}

// Project maps model-space points to screen space for a width × height
// viewport. See ProjectMVP for the output layout.
func (c Camera) Project(points []vex.Vector3, model vex.Matrix4, width, height int) ([]vex.Vector3, error) {
	vp, err := c.ViewProjection(float32(width) / float32(height))
	if err != nil {
		return nil, err
	}
	return ProjectMVP(points, vp.Mul(model), width, height), nil
}

// ProjectMVP transforms points by mvp, applies the perspective divide and
// maps the result to pixels: x grows right, y grows down, z keeps the NDC
// depth in [-1, 1] (smaller is closer). Points on or behind the eye plane
// come back with NaN components so callers can drop them with IsValid.
func ProjectMVP(points []vex.Vector3, mvp vex.Matrix4, width, height int) []vex.Vector3 {
	nan := float32(math.NaN())
	hw := float32(width) / 2
	hh := float32(height) / 2

	out := make([]vex.Vector3, len(points))
	for i, p := range points {
		clip := mvp.TransformPoint4(vex.Vector4FromVector3(p).Add(vex.NewVector4(0, 0, 0, 1)))
		if clip.W <= 0 {
			out[i] = vex.NewVector3(nan, nan, nan)
			continue
		}
		ndc := vex.Vector3FromVector4(clip).DivScalar(clip.W)
		out[i] = vex.NewVector3(
			(ndc.X+1)*hw,
			(1-ndc.Y)*hh,
			ndc.Z,
		)
	}
	return out
}

// Frame moves the camera back along its view direction until a sphere
// enclosing the box lo..hi fits the field of view, and aims at its centre.
func (c Camera) Frame(lo, hi vex.Vector3) Camera {
	center := lo.Add(hi).MulScalar(0.5)
	radius := hi.Sub(lo).Magnitude() / 2
	if radius < 1e-3 {
		radius = 1e-3
	}

	dir := c.Position.Sub(c.Target)
	if dir.Normalize() == 0 {
		dir = vex.NewVector3(0, 0, 1)
	}

	dist := radius * 2
	if !c.Orthographic {
		half := float64(vex.ToRadians(c.FOV / 2))
		dist = radius / float32(math.Sin(half))
	}
	c.OrthoHeight = radius * 2

	c.Target = center
	c.Position = center.Add(dir.MulScalar(dist))
	if c.Far < dist+radius {
		c.Far = (dist + radius) * 2
	}
	return c
}
