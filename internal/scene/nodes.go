package scene

import (
	"vex"
	"vex/internal/mesh"
)

// Node is one transform in a parent/child hierarchy.
type Node struct {
	Name        string
	Parent      int         // index of the parent node, -1 for a root
	Translation vex.Vector3 // applied last
	Rotation    vex.Vector3 // Euler XYZ, radians
	Scale       vex.Vector3 // zero means unscaled
}

// Local returns the node transform Translate · RotateZ · RotateY · RotateX · Scale.
func (n Node) Local() vex.Matrix4 {
	s := n.Scale
	if s == (vex.Vector3{}) {
		s = vex.Vector3One()
	}
	return vex.Translate(n.Translation.X, n.Translation.Y, n.Translation.Z).
		Mul(vex.RotateZ(n.Rotation.Z)).
		Mul(vex.RotateY(n.Rotation.Y)).
		Mul(vex.RotateX(n.Rotation.X)).
		Mul(vex.Scale(s.X, s.Y, s.Z))
}

// WorldMatrices chains each node's local transform with its parent's world
// transform. A parent must precede its children; a node whose parent index is
// not lower than its own is treated as a root.
func WorldMatrices(nodes []Node) []vex.Matrix4 {
	worlds := make([]vex.Matrix4, len(nodes))
	for i, n := range nodes {
		local := n.Local()
		if n.Parent >= 0 && n.Parent < i {
			worlds[i] = worlds[n.Parent].Mul(local)
		} else {
			worlds[i] = local
		}
	}
	return worlds
}

// Apply rigidly transforms each mesh by the world matrix of its owning node.
// Meshes with an out-of-range owner, or whose owner is the identity, are left
// as they are.
func Apply(meshes []*mesh.Mesh, owners []int, worlds []vex.Matrix4) {
	identity := vex.Matrix4Identity()
	for i, m := range meshes {
		if i >= len(owners) {
			return
		}
		o := owners[i]
		if o < 0 || o >= len(worlds) || worlds[o] == identity {
			continue
		}
		m.Transform(worlds[o])
	}
}

// Normals returns the matrix that carries normals through world, the inverse
// transpose of its upper 3×3. ok is false when world is singular.
func Normals(world vex.Matrix4) (m vex.Matrix3, ok bool) {
	m = vex.NewMatrix3(
		world.M11(), world.M21(), world.M31(),
		world.M12(), world.M22(), world.M32(),
		world.M13(), world.M23(), world.M33(),
	)
	if !m.Inverse() {
		return m, false
	}
	m.Transpose()
	return m, true
}
