// Package imageio writes rendered frames in the supported output formats.
package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
)

// Format names an output encoding.
type Format string

const (
	WebP Format = "webp" // lossless
	PNG  Format = "png"
	BMP  Format = "bmp"
	JPEG Format = "jpeg" // honours quality, drops alpha
)

var extensions = map[string]Format{
	".webp": WebP,
	".png":  PNG,
	".bmp":  BMP,
	".jpg":  JPEG,
	".jpeg": JPEG,
}

// ParseFormat validates a format name. "jpg" is accepted for JPEG.
func ParseFormat(s string) (Format, error) {
	f, ok := extensions["."+strings.ToLower(s)]
	if !ok {
		return "", fmt.Errorf("imageio: unknown format %q", s)
	}
	return f, nil
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("imageio: %s has no extension", path)
	}
	return ParseFormat(ext[1:])
}

// Ext returns the file extension for f, with the leading dot.
func (f Format) Ext() string {
	if f == JPEG {
		return ".jpg"
	}
	return "." + string(f)
}

// Encode writes img to w. quality only affects JPEG and is clamped to 1..100.
func Encode(w io.Writer, img image.Image, f Format, quality int) error {
	var err error
	switch f {
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: max(1, min(quality, 100))})
	default:
		return fmt.Errorf("imageio: unknown format %q", f)
	}
	if err != nil {
		return fmt.Errorf("imageio: %s encode: %w", f, err)
	}
	return nil
}

// Save creates path (and its parent directories) and encodes img into it.
func Save(path string, img image.Image, f Format, quality int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	if err := Encode(out, img, f, quality); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
