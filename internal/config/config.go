package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"vex"
	"vex/internal/camera"
	"vex/internal/scene"
)

// Config holds the scene description and render settings.
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir" yaml:"base_dir"`
	TextureDir string `json:"texture_dir" yaml:"texture_dir"`
	OutputDir  string `json:"output_dir" yaml:"output_dir"`

	// Scene
	Objects []Object     `json:"objects" yaml:"objects"`
	Camera  CameraConfig `json:"camera" yaml:"camera"`

	// Render settings
	RenderSize  int     `json:"render_size" yaml:"render_size"`
	Supersample int     `json:"supersample" yaml:"supersample"`
	Kernel      string  `json:"kernel" yaml:"kernel"`
	Format      string  `json:"format" yaml:"format"`
	Quality     int     `json:"quality" yaml:"quality"`
	Workers     int     `json:"workers" yaml:"workers"`
	Frames      int     `json:"frames" yaml:"frames"`
	Despeckle   float64 `json:"despeckle" yaml:"despeckle"` // drop specks below this share of opaque pixels
	Wireframe   bool    `json:"wireframe" yaml:"wireframe"`
	WireColor   string  `json:"wire_color" yaml:"wire_color"`
	Background  string  `json:"background" yaml:"background"`
}

// Object places one mesh in the scene. Exactly one of Mesh (an OBJ path) and
// Primitive (cube, pyramid, plane) should be set.
type Object struct {
	Name        string     `json:"name" yaml:"name"`
	Mesh        string     `json:"mesh" yaml:"mesh"`
	Primitive   string     `json:"primitive" yaml:"primitive"`
	Size        float32    `json:"size" yaml:"size"`
	Texture     string     `json:"texture" yaml:"texture"`
	Color       string     `json:"color" yaml:"color"` // x/image/colornames name
	Parent      string     `json:"parent" yaml:"parent"`
	Additive    bool       `json:"additive" yaml:"additive"` // glow: blend additively, no depth write
	Translation [3]float32 `json:"translation" yaml:"translation"`
	Rotation    [3]float32 `json:"rotation" yaml:"rotation"` // degrees
	Scale       [3]float32 `json:"scale" yaml:"scale"`
}

// CameraConfig mirrors camera.Camera with file-friendly types.
type CameraConfig struct {
	Position     [3]float32 `json:"position" yaml:"position"`
	Target       [3]float32 `json:"target" yaml:"target"`
	Up           [3]float32 `json:"up" yaml:"up"`
	FOV          float32    `json:"fov" yaml:"fov"`
	Near         float32    `json:"near" yaml:"near"`
	Far          float32    `json:"far" yaml:"far"`
	Orthographic bool       `json:"orthographic" yaml:"orthographic"`
	OrthoHeight  float32    `json:"ortho_height" yaml:"ortho_height"`
	AutoFrame    bool       `json:"auto_frame" yaml:"auto_frame"`
}

// Load reads a JSON or YAML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	TextureDir  string
	OutputDir   string
	Size        int
	Supersample int
	Quality     int
	Workers     int
	Frames      int
	Format      string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Quality > 0 {
		c.Quality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	// Resolve relative paths against base dir
	if c.BaseDir != "" {
		c.TextureDir = c.abs(c.TextureDir)
		c.OutputDir = c.abs(c.OutputDir)
		for i := range c.Objects {
			c.Objects[i].Mesh = c.abs(c.Objects[i].Mesh)
		}
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Kernel == "" {
		c.Kernel = "catmullrom"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Quality <= 0 {
		c.Quality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Frames <= 0 {
		c.Frames = 12
	}
	if c.WireColor == "" {
		c.WireColor = "black"
	}
	if len(c.Objects) == 0 {
		c.Objects = []Object{{Name: "cube", Primitive: "cube"}}
	}
	for i := range c.Objects {
		if c.Objects[i].Size <= 0 {
			c.Objects[i].Size = 1
		}
	}

	cam := &c.Camera
	if cam.Position == ([3]float32{}) {
		cam.Position = [3]float32{0, 1.5, 4}
	}
	if cam.Up == ([3]float32{}) {
		cam.Up = [3]float32{0, 1, 0}
	}
	if cam.FOV <= 0 {
		cam.FOV = 45
	}
	if cam.Near <= 0 {
		cam.Near = 0.1
	}
	if cam.Far <= 0 {
		cam.Far = 100
	}
	if cam.OrthoHeight <= 0 {
		cam.OrthoHeight = 4
	}
}

func (c *Config) abs(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// CameraSpec converts the camera section.
func (c *Config) CameraSpec() camera.Camera {
	cc := c.Camera
	return camera.Camera{
		Position:     vec3(cc.Position),
		Target:       vec3(cc.Target),
		Up:           vec3(cc.Up),
		FOV:          cc.FOV,
		Near:         cc.Near,
		Far:          cc.Far,
		Orthographic: cc.Orthographic,
		OrthoHeight:  cc.OrthoHeight,
	}
}

// Nodes converts the objects into a scene hierarchy, one node per object.
// Parents are referenced by name and must be declared before their children.
func (c *Config) Nodes() ([]scene.Node, error) {
	index := make(map[string]int, len(c.Objects))
	nodes := make([]scene.Node, len(c.Objects))
	for i, o := range c.Objects {
		parent := -1
		if o.Parent != "" {
			p, ok := index[o.Parent]
			if !ok {
				return nil, fmt.Errorf("config: object %q: parent %q not declared before it", o.Name, o.Parent)
			}
			parent = p
		}
		nodes[i] = scene.Node{
			Name:        o.Name,
			Parent:      parent,
			Translation: vec3(o.Translation),
			Rotation: vex.NewVector3(
				vex.ToRadians(o.Rotation[0]),
				vex.ToRadians(o.Rotation[1]),
				vex.ToRadians(o.Rotation[2]),
			),
			Scale: vec3(o.Scale),
		}
		if o.Name != "" {
			index[o.Name] = i
		}
	}
	return nodes, nil
}

func vec3(a [3]float32) vex.Vector3 {
	return vex.NewVector3(a[0], a[1], a[2])
}
