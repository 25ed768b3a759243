package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"vex"
)

// objFace references the file-global position and UV pools.
type objFace struct {
	v, t []int
}

type objGroup struct {
	name  string
	faces []objFace
}

// Load opens and parses a Wavefront OBJ file.
func Load(path string) ([]*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	meshes, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("mesh: parse %s: %w", path, err)
	}
	if len(meshes) == 1 && meshes[0].Name == "" {
		meshes[0].Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return meshes, nil
}

// ParseOBJ reads the geometry subset of Wavefront OBJ: v, vt, f, o and g.
// Polygons are fan-triangulated and negative (relative) indices are honoured.
// Every o/g statement starts a new mesh; empty groups are dropped.
// Normals, materials and smoothing groups are ignored.
func ParseOBJ(r io.Reader) ([]*Mesh, error) {
	var (
		positions []vex.Vector3
		uvs       []vex.Vector2
		groups    = []*objGroup{{}}
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			xyz, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, vex.NewVector3(xyz[0], xyz[1], xyz[2]))
		case "vt":
			uv, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			// OBJ puts v = 0 at the bottom of the image; textures here
			// are sampled top-down.
			uvs = append(uvs, vex.NewVector2(uv[0], 1-uv[1]))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			face := objFace{}
			for _, tok := range fields[1:] {
				vi, ti, err := parseFaceVertex(tok, len(positions), len(uvs))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				face.v = append(face.v, vi)
				face.t = append(face.t, ti)
			}
			g := groups[len(groups)-1]
			g.faces = append(g.faces, face)
		case "o", "g":
			name := strings.Join(fields[1:], " ")
			groups = append(groups, &objGroup{name: name})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	var meshes []*Mesh
	for _, g := range groups {
		if len(g.faces) == 0 {
			continue
		}
		meshes = append(meshes, g.build(positions, uvs))
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("no faces")
	}
	return meshes, nil
}

// build compacts the global pools down to the vertices this group uses.
func (g *objGroup) build(positions []vex.Vector3, uvs []vex.Vector2) *Mesh {
	m := &Mesh{Name: g.name}
	vmap := map[int]int{}
	tmap := map[int]int{-1: -1}

	remapV := func(i int) int {
		if j, ok := vmap[i]; ok {
			return j
		}
		vmap[i] = len(m.Positions)
		m.Positions = append(m.Positions, positions[i])
		return vmap[i]
	}
	remapT := func(i int) int {
		if j, ok := tmap[i]; ok {
			return j
		}
		tmap[i] = len(m.UVs)
		m.UVs = append(m.UVs, uvs[i])
		return tmap[i]
	}

	for _, f := range g.faces {
		for k := 1; k+1 < len(f.v); k++ {
			m.Tris = append(m.Tris, Triangle{
				V: [3]int{remapV(f.v[0]), remapV(f.v[k]), remapV(f.v[k+1])},
				T: [3]int{remapT(f.t[0]), remapT(f.t[k]), remapT(f.t[k+1])},
			})
		}
	}
	return m
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", fields[i], err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseFaceVertex decodes "v", "v/t", "v//n" or "v/t/n" into zero-based
// position and UV indices. A missing UV yields -1.
func parseFaceVertex(tok string, nv, nt int) (int, int, error) {
	parts := strings.Split(tok, "/")
	vi, err := resolveIndex(parts[0], nv)
	if err != nil {
		return 0, 0, fmt.Errorf("vertex %q: %w", tok, err)
	}
	ti := -1
	if len(parts) > 1 && parts[1] != "" {
		ti, err = resolveIndex(parts[1], nt)
		if err != nil {
			return 0, 0, fmt.Errorf("texcoord %q: %w", tok, err)
		}
	}
	return vi, ti, nil
}

func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("index %d out of range (have %d)", i, n)
}
