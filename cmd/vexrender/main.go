package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"vex/internal/config"
)

type SceneFlags struct {
	Config      string `help:"Scene config (.json, .yaml or .yml)." short:"c" type:"existingfile"`
	Textures    string `help:"Texture directory, overrides the config." type:"existingdir"`
	Size        int    `help:"Output edge length in pixels." short:"s"`
	Supersample int    `help:"Supersampling factor."`
	Format      string `help:"Output format: webp, png, bmp or jpeg." short:"f"`
	Quality     int    `help:"JPEG quality 1-100."`
}

func (s SceneFlags) flags() config.Flags {
	return config.Flags{
		TextureDir:  s.Textures,
		Size:        s.Size,
		Supersample: s.Supersample,
		Quality:     s.Quality,
		Format:      s.Format,
	}
}

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Render struct {
		SceneFlags
		Output string `help:"Output image; the format follows the extension." short:"o" required:""`
	} `cmd:"" help:"Render the scene to a single image."`

	Turntable struct {
		SceneFlags
		Output   string `help:"Output directory." short:"o"`
		Frames   int    `help:"Frames per revolution."`
		Workers  int    `help:"Number of worker goroutines (default: NumCPU)." short:"j"`
		Manifest string `help:"Manifest file name inside the output directory (.json or .cbor)." default:"manifest.json"`
	} `cmd:"" help:"Render a full revolution about the vertical axis."`

	Inspect struct {
		SceneFlags
		Point []float32 `help:"World-space point to project." default:"0,0,0"`
	} `cmd:"" help:"Print the camera matrices and a projected point."`

	Export struct {
		SceneFlags
		Output string `help:"Output directory for .vbuf and .ubuf files." short:"o" required:""`
		Half   bool   `help:"Pack attributes as float16."`
		Bake   bool   `help:"Bake world transforms into the vertices."`
		Zstd   bool   `help:"Compress vertex buffers with zstd (.vbuf.zst)."`
	} `cmd:"" help:"Write packed vertex buffers and uniform blocks for each object."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("vexrender"),
		kong.Description("software renderer and matrix inspector for the vex math library"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	var err error
	switch ctx.Command() {
	case "render":
		err = renderCommand(CLI.Render.SceneFlags, CLI.Render.Output)
	case "turntable":
		t := CLI.Turntable
		flags := t.flags()
		flags.OutputDir = t.Output
		flags.Frames = t.Frames
		flags.Workers = t.Workers
		err = turntableCommand(t.Config, flags, t.Manifest)
	case "inspect":
		err = inspectCommand(CLI.Inspect.SceneFlags, CLI.Inspect.Point, os.Stdout)
	case "export":
		e := CLI.Export
		err = exportCommand(e.SceneFlags, e.Output, e.Half, e.Bake, e.Zstd)
	}
	if err != nil {
		writeError(err)
	}
}
