package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"

	"vex"
	"vex/internal/camera"
	"vex/internal/config"
	"vex/internal/imageio"
	"vex/internal/mesh"
	"vex/internal/postprocess"
	"vex/internal/raster"
	"vex/internal/scene"
	"vex/internal/texture"
)

// setup is a config resolved into render-ready values.
type setup struct {
	cfg      config.Config
	objects  []raster.Object
	owners   []int // config object index of each entry in objects
	worlds   []vex.Matrix4
	camera   camera.Camera
	textures *texture.Cache
	kernel   draw.Interpolator
	format   imageio.Format
	options  raster.Options
}

// loadSetup reads the optional config file, applies flags and builds the
// scene. Objects listing an OBJ file with several groups yield one render
// object per group.
func loadSetup(path string, flags config.Flags) (*setup, error) {
	var cfg config.Config
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	cfg.Resolve(flags)

	nodes, err := cfg.Nodes()
	if err != nil {
		return nil, err
	}
	s := &setup{cfg: cfg, worlds: scene.WorldMatrices(nodes)}

	for i, o := range cfg.Objects {
		meshes, err := objectMeshes(o)
		if err != nil {
			return nil, err
		}
		base, err := raster.ParseColor(o.Color)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", o.Name, err)
		}
		blend := raster.BlendOpaque
		if o.Additive {
			blend = raster.BlendAdditive
		}
		for _, m := range meshes {
			if o.Texture != "" {
				m.TexPath = o.Texture
			}
			s.objects = append(s.objects, raster.Object{Mesh: m, Model: s.worlds[i], Color: base, Blend: blend})
			s.owners = append(s.owners, i)
		}
	}

	s.camera = cfg.CameraSpec()
	if cfg.Camera.AutoFrame {
		lo, hi := s.bounds()
		s.camera = s.camera.Frame(lo, hi)
		log.Debug().Stringer("target", s.camera.Target).Stringer("position", s.camera.Position).Msg("auto-framed camera")
	}

	index := texture.BuildIndex(cfg.TextureDir)
	s.textures = texture.NewCache(index)
	log.Debug().Int("textures", index.Len()).Str("dir", cfg.TextureDir).Msg("texture index built")

	if s.kernel, err = postprocess.Kernel(cfg.Kernel); err != nil {
		return nil, err
	}
	if s.format, err = imageio.ParseFormat(cfg.Format); err != nil {
		return nil, err
	}

	s.options = raster.Options{Size: cfg.RenderSize, Supersample: cfg.Supersample}
	if s.options.Background, err = raster.ParseColor(cfg.Background); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	if cfg.Wireframe {
		wire, err := raster.ParseColor(cfg.WireColor)
		if err != nil {
			return nil, fmt.Errorf("wire colour: %w", err)
		}
		s.options.Wireframe = wire
	}
	return s, nil
}

func objectMeshes(o config.Object) ([]*mesh.Mesh, error) {
	if o.Mesh != "" {
		meshes, err := mesh.Load(o.Mesh)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", o.Name, err)
		}
		if o.Size != 1 {
			for _, m := range meshes {
				m.Transform(vex.Scale(o.Size, o.Size, o.Size))
			}
		}
		return meshes, nil
	}
	m := mesh.Primitive(o.Primitive, o.Size)
	if m == nil {
		return nil, fmt.Errorf("object %q: unknown primitive %q", o.Name, o.Primitive)
	}
	return []*mesh.Mesh{m}, nil
}

// bounds returns the world-space box around every object.
func (s *setup) bounds() (lo, hi vex.Vector3) {
	world := make([]*mesh.Mesh, len(s.objects))
	for i, o := range s.objects {
		world[i] = o.Mesh.Clone()
	}
	scene.Apply(world, s.owners, s.worlds)
	return mesh.Bounds(world)
}
