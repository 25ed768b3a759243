// Package vertexbuf packs meshes into interleaved little-endian GPU vertex
// buffers and matrices into a uniform block.
package vertexbuf

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/x448/float16"

	"vex"
	"vex/internal/mesh"
	"vex/internal/scene"
)

// Precision selects the scalar encoding of vertex attributes.
type Precision int

const (
	Float32 Precision = iota
	Float16
)

func (p Precision) String() string {
	if p == Float16 {
		return "float16"
	}
	return "float32"
}

// Size returns the byte width of one scalar.
func (p Precision) Size() int {
	if p == Float16 {
		return 2
	}
	return 4
}

// Layout describes one interleaved vertex: position always, then the
// optional UV and face normal.
type Layout struct {
	UV        bool
	Normal    bool
	Precision Precision
}

// Components returns the number of scalars per vertex.
func (l Layout) Components() int {
	n := 3
	if l.UV {
		n += 2
	}
	if l.Normal {
		n += 3
	}
	return n
}

// Stride returns the byte size of one vertex.
func (l Layout) Stride() int {
	return l.Components() * l.Precision.Size()
}

// Pack expands m into a non-indexed triangle list, three vertices per
// triangle. Corners without a UV get (0, 0).
func Pack(m *mesh.Mesh, l Layout) ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("vertexbuf: mesh %q has out-of-range indices", m.Name)
	}
	buf := make([]byte, 0, len(m.Tris)*3*l.Stride())
	put := putter(l.Precision)

	for ti, tri := range m.Tris {
		var n vex.Vector3
		if l.Normal {
			n = m.FaceNormal(ti)
		}
		for k := 0; k < 3; k++ {
			p := m.Positions[tri.V[k]]
			buf = put(buf, p.X, p.Y, p.Z)
			if l.UV {
				var uv vex.Vector2
				if t := tri.T[k]; t >= 0 && t < len(m.UVs) {
					uv = m.UVs[t]
				}
				buf = put(buf, uv.X, uv.Y)
			}
			if l.Normal {
				buf = put(buf, n.X, n.Y, n.Z)
			}
		}
	}
	return buf, nil
}

func putter(p Precision) func([]byte, ...float32) []byte {
	if p == Float16 {
		return func(b []byte, vs ...float32) []byte {
			for _, v := range vs {
				b = binary.LittleEndian.AppendUint16(b, float16.Fromfloat32(v).Bits())
			}
			return b
		}
	}
	return func(b []byte, vs ...float32) []byte {
		for _, v := range vs {
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
		}
		return b
	}
}

// Floats decodes a buffer written with precision p back to float32.
func Floats(buf []byte, p Precision) ([]float32, error) {
	size := p.Size()
	if len(buf)%size != 0 {
		return nil, fmt.Errorf("vertexbuf: %d bytes is not a multiple of %s", len(buf), p)
	}
	out := make([]float32, len(buf)/size)
	for i := range out {
		if p == Float16 {
			out[i] = float16.Frombits(binary.LittleEndian.Uint16(buf[i*2:])).Float32()
		} else {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		}
	}
	return out, nil
}

// Uniforms is the per-draw matrix block.
type Uniforms struct {
	Model      vex.Matrix4
	View       vex.Matrix4
	Projection vex.Matrix4
	Normal     vex.Matrix3 // inverse-transpose of Model's upper 3×3
}

// UniformSize is the byte size of a packed Uniforms block: three mat4 and a
// mat3 whose columns are padded to four floats.
const UniformSize = (3*16 + 3*4) * 4

// NewUniforms derives the normal matrix from model. It fails when model has
// a singular linear part.
func NewUniforms(model, view, projection vex.Matrix4) (Uniforms, error) {
	n, ok := scene.Normals(model)
	if !ok {
		return Uniforms{}, fmt.Errorf("vertexbuf: model matrix is singular")
	}
	return Uniforms{Model: model, View: view, Projection: projection, Normal: n}, nil
}

// PackUniforms lays the block out column-major in float32.
func PackUniforms(u Uniforms) []byte {
	buf := make([]byte, 0, UniformSize)
	for _, m := range [...]vex.Matrix4{u.Model, u.View, u.Projection} {
		for _, v := range m {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
		}
	}
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(u.Normal[col*3+row]))
		}
		buf = binary.LittleEndian.AppendUint32(buf, 0)
	}
	return buf
}
