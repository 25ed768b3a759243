package mesh

import "vex"

// quadUVs are the texture corners used by every quad face, in fan order.
var quadUVs = []vex.Vector2{
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: 0},
}

// quad splits a counter-clockwise quad a-b-c-d into two triangles (a-b-c, a-c-d).
func quad(a, b, c, d int) []Triangle {
	return []Triangle{
		{V: [3]int{a, b, c}, T: [3]int{0, 1, 2}},
		{V: [3]int{a, c, d}, T: [3]int{0, 2, 3}},
	}
}

// Cube returns an axis-aligned cube of edge length size centred on the origin.
func Cube(size float32) *Mesh {
	h := size / 2
	m := &Mesh{
		Name: "cube",
		Positions: []vex.Vector3{
			{X: -h, Y: -h, Z: -h},
			{X: h, Y: -h, Z: -h},
			{X: h, Y: h, Z: -h},
			{X: -h, Y: h, Z: -h},
			{X: -h, Y: -h, Z: h},
			{X: h, Y: -h, Z: h},
			{X: h, Y: h, Z: h},
			{X: -h, Y: h, Z: h},
		},
		UVs: append([]vex.Vector2(nil), quadUVs...),
	}
	faces := [][4]int{
		{4, 5, 6, 7}, // +z
		{1, 0, 3, 2}, // -z
		{5, 1, 2, 6}, // +x
		{0, 4, 7, 3}, // -x
		{7, 6, 2, 3}, // +y
		{0, 1, 5, 4}, // -y
	}
	for _, f := range faces {
		m.Tris = append(m.Tris, quad(f[0], f[1], f[2], f[3])...)
	}
	return m
}

// Pyramid returns a square pyramid with its base on y = 0 and apex at
// (0, height, 0).
func Pyramid(size, height float32) *Mesh {
	h := size / 2
	m := &Mesh{
		Name: "pyramid",
		Positions: []vex.Vector3{
			{X: -h, Y: 0, Z: -h},
			{X: h, Y: 0, Z: -h},
			{X: h, Y: 0, Z: h},
			{X: -h, Y: 0, Z: h},
			{X: 0, Y: height, Z: 0},
		},
		UVs: []vex.Vector2{
			{X: 0, Y: 1},
			{X: 1, Y: 1},
			{X: 0.5, Y: 0},
		},
	}
	sides := [][2]int{{3, 2}, {2, 1}, {1, 0}, {0, 3}}
	for _, s := range sides {
		m.Tris = append(m.Tris, Triangle{V: [3]int{s[0], s[1], 4}, T: [3]int{0, 1, 2}})
	}
	m.Tris = append(m.Tris,
		Triangle{V: [3]int{0, 1, 2}, T: [3]int{-1, -1, -1}},
		Triangle{V: [3]int{0, 2, 3}, T: [3]int{-1, -1, -1}},
	)
	return m
}

// Plane returns a square in the XZ plane facing +y.
func Plane(size float32) *Mesh {
	h := size / 2
	m := &Mesh{
		Name: "plane",
		Positions: []vex.Vector3{
			{X: -h, Y: 0, Z: -h},
			{X: -h, Y: 0, Z: h},
			{X: h, Y: 0, Z: h},
			{X: h, Y: 0, Z: -h},
		},
		UVs: append([]vex.Vector2(nil), quadUVs...),
	}
	m.Tris = quad(0, 1, 2, 3)
	return m
}

// Primitive builds a named primitive, or returns nil for an unknown name.
func Primitive(name string, size float32) *Mesh {
	switch name {
	case "cube":
		return Cube(size)
	case "pyramid":
		return Pyramid(size, size)
	case "plane":
		return Plane(size)
	}
	return nil
}
