package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"vex"
)

// ManifestEntry describes one rendered frame. Matrices are column-major.
type ManifestEntry struct {
	Index      int         `json:"index"`
	Angle      float32     `json:"angle"`
	Image      string      `json:"image"`
	Model      [16]float32 `json:"model"`
	View       [16]float32 `json:"view"`
	Projection [16]float32 `json:"projection"`
	Checksum   string      `json:"checksum"` // xxhash64, hex
}

// Manifest is the index written next to a turntable run.
type Manifest struct {
	Name   string          `json:"name"`
	Size   int             `json:"size"`
	Format string          `json:"format"`
	Frames []ManifestEntry `json:"frames"`
}

// NewManifest collects the successful results. Image paths are stored
// relative to dir.
func NewManifest(name string, size int, format string, dir string, results []Result) Manifest {
	m := Manifest{Name: name, Size: size, Format: format}
	for _, r := range results {
		if !r.Success {
			continue
		}
		img := r.Path
		if rel, err := filepath.Rel(dir, r.Path); err == nil {
			img = filepath.ToSlash(rel)
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Index:      r.Index,
			Angle:      r.Angle,
			Image:      img,
			Model:      r.Model,
			View:       r.View,
			Projection: r.Projection,
			Checksum:   fmt.Sprintf("%016x", r.Checksum),
		})
	}
	return m
}

// Matrices returns the frame's model, view and projection.
func (e ManifestEntry) Matrices() (model, view, projection vex.Matrix4) {
	return e.Model, e.View, e.Projection
}

func isCBOR(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".cbor")
}

// WriteManifest writes m as CBOR when path ends in .cbor, JSON otherwise.
func WriteManifest(path string, m Manifest) error {
	var (
		data []byte
		err  error
	)
	if isCBOR(path) {
		data, err = cbor.Marshal(m)
	} else {
		data, err = json.MarshalIndent(m, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("batch: encode manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("batch: read manifest: %w", err)
	}
	var m Manifest
	if isCBOR(path) {
		err = cbor.Unmarshal(data, &m)
	} else {
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("batch: decode manifest %s: %w", path, err)
	}
	return m, nil
}
