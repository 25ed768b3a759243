package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"vex/internal/batch"
	"vex/internal/config"
	"vex/internal/imageio"
	"vex/internal/postprocess"
	"vex/internal/raster"
)

func renderCommand(f SceneFlags, output string) error {
	flags := f.flags()
	if flags.Format == "" {
		if format, err := imageio.FormatFromPath(output); err == nil {
			flags.Format = string(format)
		}
	}
	s, err := loadSetup(f.Config, flags)
	if err != nil {
		return err
	}

	start := time.Now()
	img, err := raster.Render(s.objects, s.camera, s.textures, s.options)
	if err != nil {
		return err
	}
	if s.cfg.Supersample > 1 {
		img = postprocess.Downsample(img, s.cfg.RenderSize, s.kernel)
	}
	img = postprocess.RemoveSmallClusters(img, s.cfg.Despeckle)

	if err := imageio.Save(output, img, s.format, s.cfg.Quality); err != nil {
		return err
	}
	log.Info().
		Str("output", output).
		Int("objects", len(s.objects)).
		Int("textures", s.textures.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("rendered")
	return nil
}

func turntableCommand(configPath string, flags config.Flags, manifest string) error {
	s, err := loadSetup(configPath, flags)
	if err != nil {
		return err
	}
	cfg := s.cfg

	log.Info().
		Int("frames", cfg.Frames).
		Int("workers", cfg.Workers).
		Str("output", cfg.OutputDir).
		Str("format", string(s.format)).
		Msg("turntable")

	name := "frame"
	if len(cfg.Objects) > 0 && cfg.Objects[0].Name != "" {
		name = cfg.Objects[0].Name
	}

	results, err := batch.Run(batch.Config{
		Name:        name,
		OutputDir:   cfg.OutputDir,
		Objects:     s.objects,
		Camera:      s.camera,
		TexResolver: s.textures,
		Render:      s.options,
		Kernel:      s.kernel,
		Despeckle:   cfg.Despeckle,
		Format:      s.format,
		Quality:     cfg.Quality,
		Frames:      cfg.Frames,
		Workers:     cfg.Workers,
	})
	if err != nil {
		return err
	}

	// Count results
	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	log.Info().Int("rendered", len(results)-len(failed)).Int("total", len(results)).Msg("done")

	limit := min(len(failed), 20)
	for _, r := range failed[:limit] {
		log.Error().Int("frame", r.Index).Msg(r.Error)
	}

	m := batch.NewManifest(name, cfg.RenderSize, string(s.format), cfg.OutputDir, results)
	path := filepath.Join(cfg.OutputDir, manifest)
	if err := batch.WriteManifest(path, m); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("manifest written")

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d frames failed", len(failed), len(results))
	}
	return nil
}
