package mesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vex"
)

func TestPrimitivesAreClosedAndOutward(t *testing.T) {
	tests := []struct {
		name  string
		mesh  *Mesh
		tris  int
		verts int
	}{
		{"cube", Cube(2), 12, 8},
		{"pyramid", Pyramid(2, 3), 6, 5},
		{"plane", Plane(2), 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.mesh.Valid())
			assert.Len(t, tt.mesh.Tris, tt.tris)
			assert.Len(t, tt.mesh.Positions, tt.verts)

			lo, hi := tt.mesh.Bounds()
			center := lo.Add(hi).MulScalar(0.5)
			for i := range tt.mesh.Tris {
				n := tt.mesh.FaceNormal(i)
				assert.InDelta(t, 1, n.Magnitude(), 1e-5)
				if tt.name == "plane" {
					assert.Equal(t, vex.Vector3Up(), n)
					continue
				}
				// outward: normal points away from the centre of the solid
				p := tt.mesh.Positions[tt.mesh.Tris[i].V[0]]
				assert.Greater(t, n.Dot(p.Sub(center)), float32(0), "face %d", i)
			}
		})
	}
}

func TestCubeBounds(t *testing.T) {
	lo, hi := Cube(2).Bounds()
	assert.Equal(t, vex.NewVector3(-1, -1, -1), lo)
	assert.Equal(t, vex.NewVector3(1, 1, 1), hi)
}

func TestTransform(t *testing.T) {
	m := Cube(2)
	m.Transform(vex.Translate(10, 0, 0).Mul(vex.Scale(2, 2, 2)))
	lo, hi := m.Bounds()
	assert.Equal(t, vex.NewVector3(8, -2, -2), lo)
	assert.Equal(t, vex.NewVector3(12, 2, 2), hi)
}

func TestCloneDoesNotAlias(t *testing.T) {
	a := Plane(1)
	b := a.Clone()
	b.Transform(vex.Translate(0, 5, 0))
	assert.Equal(t, float32(0), a.Positions[0].Y)
	assert.Equal(t, float32(5), b.Positions[0].Y)
}

func TestCombinedBounds(t *testing.T) {
	a := Cube(2)
	b := Cube(2)
	b.Transform(vex.Translate(0, 0, 5))
	lo, hi := Bounds([]*Mesh{a, b})
	assert.Equal(t, vex.NewVector3(-1, -1, -1), lo)
	assert.Equal(t, vex.NewVector3(1, 1, 6), hi)
}

func TestPrimitiveByName(t *testing.T) {
	assert.Equal(t, "cube", Primitive("cube", 1).Name)
	assert.Equal(t, "pyramid", Primitive("pyramid", 1).Name)
	assert.Equal(t, "plane", Primitive("plane", 1).Name)
	assert.Nil(t, Primitive("teapot", 1))
}

const quadOBJ = `# a unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJQuad(t *testing.T) {
	meshes, err := ParseOBJ(strings.NewReader(quadOBJ))
	require.NoError(t, err)
	require.Len(t, meshes, 1)

	m := meshes[0]
	assert.Len(t, m.Positions, 4)
	assert.Len(t, m.UVs, 4)
	assert.Equal(t, []Triangle{
		{V: [3]int{0, 1, 2}, T: [3]int{0, 1, 2}},
		{V: [3]int{0, 2, 3}, T: [3]int{0, 2, 3}},
	}, m.Tris)
	assert.Equal(t, vex.NewVector3(0, 0, 1), m.FaceNormal(0))
}

func TestParseOBJGroupsAndNegativeIndices(t *testing.T) {
	src := `
o first
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
o second
v 5 5 5
v 6 5 5
v 5 6 5
f 4//1 5//1 6//1
`
	meshes, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, meshes, 2)

	assert.Equal(t, "first", meshes[0].Name)
	assert.Equal(t, "second", meshes[1].Name)
	assert.Len(t, meshes[1].Positions, 3)
	assert.Equal(t, vex.NewVector3(5, 5, 5), meshes[1].Positions[0])
	assert.Equal(t, [3]int{-1, -1, -1}, meshes[1].Tris[0].T)
	assert.Empty(t, meshes[1].UVs)
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad number", "v 1 x 2\n", "line 1"},
		{"short vertex", "v 1 2\n", "expected 3 values"},
		{"index out of range", "v 0 0 0\nf 1 2 3\n", "out of range"},
		{"short face", "v 0 0 0\nf 1 1\n", "at least 3"},
		{"no faces", "v 0 0 0\n", "no faces"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadNamesMeshAfterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte(quadOBJ), 0644))

	meshes, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "quad", meshes[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}
