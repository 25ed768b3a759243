package batch

import (
	"fmt"
	"math"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"

	"vex"
	"vex/internal/camera"
	"vex/internal/imageio"
	"vex/internal/postprocess"
	"vex/internal/raster"
	"vex/internal/texture"
)

// Config holds all shared resources for a turntable run.
type Config struct {
	Name        string // output file prefix
	OutputDir   string
	Objects     []raster.Object
	Camera      camera.Camera
	TexResolver texture.Resolver
	Render      raster.Options
	Kernel      draw.Interpolator
	Despeckle   float64 // RemoveSmallClusters ratio, 0 disables
	Format      imageio.Format
	Quality     int
	Frames      int
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index      int
	Angle      float32 // radians about +y
	Path       string
	Model      vex.Matrix4 // turntable rotation applied to every object
	View       vex.Matrix4
	Projection vex.Matrix4
	Checksum   uint64 // xxhash of the final RGBA pixels
	Success    bool
	Error      string
}

// FrameAngle returns the turntable angle of frame i out of n.
func FrameAngle(i, n int) float32 {
	return float32(2 * math.Pi * float64(i) / float64(n))
}

// Run renders cfg.Frames turntable frames using a worker pool.
func Run(cfg Config) ([]Result, error) {
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("batch: frames must be positive, got %d", cfg.Frames)
	}
	view, err := cfg.Camera.View()
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	proj := cfg.Camera.Projection(1)
	workers := max(cfg.Workers, 1)

	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info().
						Int64("done", p).
						Int("total", total).
						Float64("fps", float64(p)/elapsed).
						Msg("turntable progress")
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				r := processFrame(cfg, idx)
				r.View, r.Projection = view, proj
				if !r.Success {
					log.Warn().Int("frame", idx).Str("error", r.Error).Msg("frame failed")
				}
				results[idx] = r
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	log.Info().
		Int("frames", total).
		Dur("elapsed", time.Since(start)).
		Msg("turntable finished")
	return results, nil
}

func processFrame(cfg Config, idx int) Result {
	angle := FrameAngle(idx, cfg.Frames)
	spin := vex.RotateY(angle)
	res := Result{
		Index: idx,
		Angle: angle,
		Model: spin,
		Path:  filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%03d%s", cfg.Name, idx, cfg.Format.Ext())),
	}

	objects := make([]raster.Object, len(cfg.Objects))
	for i, o := range cfg.Objects {
		o.Model = spin.Mul(o.Model)
		objects[i] = o
	}

	img, err := raster.Render(objects, cfg.Camera, cfg.TexResolver, cfg.Render)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	// Post-processing: supersample downsample
	if cfg.Render.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Render.Size, cfg.Kernel)
	}
	img = postprocess.RemoveSmallClusters(img, cfg.Despeckle)

	res.Checksum = xxhash.Sum64(img.Pix)

	if err := imageio.Save(res.Path, img, cfg.Format, cfg.Quality); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}
