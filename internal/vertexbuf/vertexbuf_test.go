package vertexbuf

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vex"
	"vex/internal/mesh"
)

func triangle() *mesh.Mesh {
	return &mesh.Mesh{
		Name:      "tri",
		Positions: []vex.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		UVs:       []vex.Vector2{{X: 0.25, Y: 0.5}, {X: 1, Y: 0.75}},
		Tris:      []mesh.Triangle{{V: [3]int{0, 1, 2}, T: [3]int{0, 1, -1}}},
	}
}

func TestLayout(t *testing.T) {
	cases := []struct {
		l          Layout
		components int
		stride     int
	}{
		{Layout{}, 3, 12},
		{Layout{UV: true}, 5, 20},
		{Layout{UV: true, Normal: true}, 8, 32},
		{Layout{UV: true, Normal: true, Precision: Float16}, 8, 16},
		{Layout{Normal: true, Precision: Float16}, 6, 12},
	}
	for _, c := range cases {
		assert.Equal(t, c.components, c.l.Components(), "%+v", c.l)
		assert.Equal(t, c.stride, c.l.Stride(), "%+v", c.l)
	}
	assert.Equal(t, "float16", Float16.String())
	assert.Equal(t, "float32", Float32.String())
}

func TestPackFloat32(t *testing.T) {
	l := Layout{UV: true, Normal: true}
	buf, err := Pack(triangle(), l)
	require.NoError(t, err)
	require.Len(t, buf, 3*l.Stride())

	f, err := Floats(buf, Float32)
	require.NoError(t, err)
	assert.Equal(t, []float32{
		0, 0, 0, 0.25, 0.5, 0, 0, 1,
		1, 0, 0, 1, 0.75, 0, 0, 1,
		0, 1, 0, 0, 0, 0, 0, 1,
	}, f)

	// little-endian on the wire
	assert.Equal(t, math.Float32bits(1), binary.LittleEndian.Uint32(buf[32:]))
}

func TestPackFloat16(t *testing.T) {
	l := Layout{UV: true, Precision: Float16}
	buf, err := Pack(mesh.Cube(2), l)
	require.NoError(t, err)
	require.Len(t, buf, 12*3*l.Stride())

	f, err := Floats(buf, Float16)
	require.NoError(t, err)
	for i := 0; i < len(f); i += l.Components() {
		for k := 0; k < 3; k++ {
			assert.Equal(t, float32(1), float32(math.Abs(float64(f[i+k]))))
		}
	}
}

func TestPackErrors(t *testing.T) {
	m := triangle()
	m.Tris[0].V[2] = 9
	_, err := Pack(m, Layout{})
	assert.ErrorContains(t, err, "out-of-range")

	_, err = Floats(make([]byte, 5), Float32)
	assert.Error(t, err)
	_, err = Floats(make([]byte, 3), Float16)
	assert.Error(t, err)
}

func TestUniforms(t *testing.T) {
	model := vex.Translate(1, 2, 3).Mul(vex.Scale(2, 2, 2))
	view := vex.RotateY(0.5)
	proj := vex.Perspective(60, 1, 0.1, 10)

	u, err := NewUniforms(model, view, proj)
	require.NoError(t, err)
	assert.True(t, u.Normal.ApproxEqual(vex.NewMatrix3(0.5, 0, 0, 0, 0.5, 0, 0, 0, 0.5), 1e-6))

	buf := PackUniforms(u)
	require.Len(t, buf, UniformSize)
	f, err := Floats(buf, Float32)
	require.NoError(t, err)

	assert.Equal(t, model[:], f[0:16])
	assert.Equal(t, view[:], f[16:32])
	assert.Equal(t, proj[:], f[32:48])
	// mat3 columns padded to vec4
	assert.Equal(t, []float32{0.5, 0, 0, 0, 0, 0.5, 0, 0, 0, 0, 0.5, 0}, f[48:60])

	_, err = NewUniforms(vex.Scale(0, 1, 1), view, proj)
	assert.ErrorContains(t, err, "singular")
}

func TestCompress(t *testing.T) {
	buf, err := Pack(mesh.Cube(1), Layout{UV: true, Normal: true})
	require.NoError(t, err)

	z, err := Compress(buf)
	require.NoError(t, err)
	assert.Less(t, len(z), len(buf))

	back, err := Decompress(z)
	require.NoError(t, err)
	assert.Equal(t, buf, back)

	_, err = Decompress([]byte("definitely not zstd"))
	assert.Error(t, err)
}
