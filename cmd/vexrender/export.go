package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"vex"
	"vex/internal/mesh"
	"vex/internal/scene"
	"vex/internal/vertexbuf"
)

func exportCommand(f SceneFlags, outDir string, half, bake, compress bool) error {
	s, err := loadSetup(f.Config, f.flags())
	if err != nil {
		return err
	}
	view, err := s.camera.View()
	if err != nil {
		return err
	}
	proj := s.camera.Projection(1)

	layout := vertexbuf.Layout{UV: true, Normal: true}
	if half {
		layout.Precision = vertexbuf.Float16
	}

	meshes := make([]*mesh.Mesh, len(s.objects))
	models := make([]vex.Matrix4, len(s.objects))
	for i, o := range s.objects {
		meshes[i] = o.Mesh
		models[i] = o.Model
	}
	if bake {
		for i := range meshes {
			meshes[i] = meshes[i].Clone()
			models[i] = vex.Matrix4Identity()
		}
		scene.Apply(meshes, s.owners, s.worlds)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	for i, m := range meshes {
		vb, err := vertexbuf.Pack(m, layout)
		if err != nil {
			return err
		}
		u, err := vertexbuf.NewUniforms(models[i], view, proj)
		if err != nil {
			return fmt.Errorf("object %q: %w", m.Name, err)
		}

		base := filepath.Join(outDir, fmt.Sprintf("%02d_%s", i, m.Name))
		vertices := len(vb) / layout.Stride()
		ext := ".vbuf"
		if compress {
			if vb, err = vertexbuf.Compress(vb); err != nil {
				return err
			}
			ext += ".zst"
		}
		if err := os.WriteFile(base+ext, vb, 0644); err != nil {
			return err
		}
		if err := os.WriteFile(base+".ubuf", vertexbuf.PackUniforms(u), 0644); err != nil {
			return err
		}
		log.Info().
			Str("mesh", m.Name).
			Int("vertices", vertices).
			Int("bytes", len(vb)).
			Int("stride", layout.Stride()).
			Stringer("precision", layout.Precision).
			Msg("exported")
	}
	return nil
}
