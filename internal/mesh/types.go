package mesh

import (
	"math"

	"vex"
)

// Triangle holds index triples into a mesh's position and UV arrays.
// T entries are -1 when the face carries no texture coordinates.
type Triangle struct {
	V [3]int
	T [3]int
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name      string
	Positions []vex.Vector3 // mutable, Transform rewrites them in place
	UVs       []vex.Vector2
	Tris      []Triangle
	TexPath   string // texture reference resolved through texture.Index
}

// Bounds returns the axis-aligned bounding box of the positions.
// An empty mesh yields (+Inf, -Inf).
func (m *Mesh) Bounds() (lo, hi vex.Vector3) {
	inf := float32(math.Inf(1))
	lo = vex.NewVector3(inf, inf, inf)
	hi = lo.Neg()
	for _, p := range m.Positions {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi
}

// Transform applies an affine matrix to every position.
func (m *Mesh) Transform(mat vex.Matrix4) {
	vex.TransformPoints(mat.TransformPoint3, m.Positions)
}

// FaceNormal returns the unit normal of triangle i, counter-clockwise winding
// facing out. Degenerate faces return the zero vector.
func (m *Mesh) FaceNormal(i int) vex.Vector3 {
	t := m.Tris[i]
	p0 := m.Positions[t.V[0]]
	n := m.Positions[t.V[1]].Sub(p0).Cross(m.Positions[t.V[2]].Sub(p0))
	n.Normalize()
	return n
}

// Valid reports whether every triangle index is in range.
func (m *Mesh) Valid() bool {
	for _, t := range m.Tris {
		for k := 0; k < 3; k++ {
			if t.V[k] < 0 || t.V[k] >= len(m.Positions) {
				return false
			}
			if t.T[k] >= len(m.UVs) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy so transforms don't alias the source.
func (m *Mesh) Clone() *Mesh {
	c := *m
	c.Positions = append([]vex.Vector3(nil), m.Positions...)
	c.UVs = append([]vex.Vector2(nil), m.UVs...)
	c.Tris = append([]Triangle(nil), m.Tris...)
	return &c
}

// Bounds returns the combined bounding box of several meshes.
func Bounds(meshes []*Mesh) (lo, hi vex.Vector3) {
	inf := float32(math.Inf(1))
	lo = vex.NewVector3(inf, inf, inf)
	hi = lo.Neg()
	for _, m := range meshes {
		mlo, mhi := m.Bounds()
		lo = lo.Min(mlo)
		hi = hi.Max(mhi)
	}
	return lo, hi
}
