package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vex"
)

func TestViewIsInverseOfWorld(t *testing.T) {
	c := Default()
	view, err := c.View()
	require.NoError(t, err)

	assert.True(t, c.World().Mul(view).ApproxEqual(vex.Matrix4Identity(), 1e-5))

	eye := view.TransformPoint3(c.Position)
	assert.True(t, eye.ApproxEqual(vex.Vector3Zero(), 1e-5), "%v", eye)

	// the target lies straight ahead on -z
	target := view.TransformPoint3(c.Target)
	assert.InDelta(t, 0, target.X, 1e-5)
	assert.InDelta(t, 0, target.Y, 1e-5)
	assert.Less(t, target.Z, float32(0))
}

func TestViewDegenerate(t *testing.T) {
	c := Default()
	c.Position = vex.NewVector3(0, 5, 0)
	c.Target = vex.Vector3Zero()
	c.Up = vex.Vector3Up()

	_, err := c.View()
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = c.Project([]vex.Vector3{vex.Vector3Zero()}, vex.Matrix4Identity(), 10, 10)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestProjectCentre(t *testing.T) {
	c := Default()
	pts, err := c.Project([]vex.Vector3{c.Target}, vex.Matrix4Identity(), 200, 100)
	require.NoError(t, err)

	p := pts[0]
	assert.InDelta(t, 100, p.X, 1e-3)
	assert.InDelta(t, 50, p.Y, 1e-3)
	assert.Greater(t, p.Z, float32(-1))
	assert.Less(t, p.Z, float32(1))
}

func TestProjectOrientation(t *testing.T) {
	c := Camera{
		Position: vex.NewVector3(0, 0, 5),
		Target:   vex.Vector3Zero(),
		Up:       vex.Vector3Up(),
		FOV:      90,
		Near:     0.1,
		Far:      100,
	}
	pts, err := c.Project([]vex.Vector3{
		vex.NewVector3(1, 0, 0),  // right of centre
		vex.NewVector3(0, 1, 0),  // above centre
		vex.NewVector3(0, 0, 1),  // closer
		vex.NewVector3(0, 0, 10), // behind the camera
	}, vex.Matrix4Identity(), 100, 100)
	require.NoError(t, err)

	assert.Greater(t, pts[0].X, float32(50))
	assert.Less(t, pts[1].Y, float32(50))
	assert.Less(t, pts[2].Z, pts[0].Z)
	assert.False(t, pts[3].IsValid())
}

func TestProjectOrthographicKeepsSize(t *testing.T) {
	c := Default()
	c.Orthographic = true
	c.OrthoHeight = 4
	c.Position = vex.NewVector3(0, 0, 10)

	near, err := c.Project([]vex.Vector3{vex.NewVector3(1, 0, 5)}, vex.Matrix4Identity(), 100, 100)
	require.NoError(t, err)
	far, err := c.Project([]vex.Vector3{vex.NewVector3(1, 0, -5)}, vex.Matrix4Identity(), 100, 100)
	require.NoError(t, err)

	assert.InDelta(t, 75, near[0].X, 1e-3)
	assert.InDelta(t, near[0].X, far[0].X, 1e-3)
}

func TestProjectionSwitch(t *testing.T) {
	c := Default()
	assert.Equal(t, float32(-1), c.Projection(1).M43())

	c.Orthographic = true
	p := c.Projection(2)
	assert.Equal(t, float32(0), p.M43())
	assert.Equal(t, float32(1), p.M44())
	assert.InDelta(t, 0.25, p.M11(), 1e-6)
	assert.InDelta(t, 0.5, p.M22(), 1e-6)
}

func TestFrame(t *testing.T) {
	c := Default().Frame(vex.NewVector3(9, -1, -1), vex.NewVector3(11, 1, 1))
	assert.Equal(t, vex.NewVector3(10, 0, 0), c.Target)

	// every corner lands inside the viewport
	corners := []vex.Vector3{
		vex.NewVector3(9, -1, -1), vex.NewVector3(11, 1, 1),
		vex.NewVector3(9, 1, -1), vex.NewVector3(11, -1, 1),
	}
	pts, err := c.Project(corners, vex.Matrix4Identity(), 100, 100)
	require.NoError(t, err)
	for _, p := range pts {
		require.True(t, p.IsValid())
		assert.GreaterOrEqual(t, p.X, float32(0))
		assert.LessOrEqual(t, p.X, float32(100))
		assert.GreaterOrEqual(t, p.Y, float32(0))
		assert.LessOrEqual(t, p.Y, float32(100))
	}
}
