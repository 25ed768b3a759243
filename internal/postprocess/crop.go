package postprocess

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// CropAndCenter crops to the bounding box of non-transparent pixels, then
// scales the crop to fillRatio of a size × size canvas and centres it.
func CropAndCenter(img *image.NRGBA, size int, fillRatio float64, kernel draw.Interpolator) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	box, ok := opaqueBounds(img)
	if !ok {
		return canvas
	}
	if kernel == nil {
		kernel = draw.CatmullRom
	}

	maxDim := float64(size) * fillRatio
	scale := maxDim / math.Max(float64(box.Dx()), float64(box.Dy()))
	newW := max(int(float64(box.Dx())*scale+0.5), 1)
	newH := max(int(float64(box.Dy())*scale+0.5), 1)

	off := image.Pt((size-newW)/2, (size-newH)/2)
	kernel.Scale(canvas, image.Rectangle{Min: off, Max: off.Add(image.Pt(newW, newH))}, img, box, draw.Src, nil)
	return canvas
}

// opaqueBounds returns the smallest rectangle holding every pixel with
// non-zero alpha.
func opaqueBounds(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	r := image.Rectangle{}
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] == 0 {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if !found {
				r = px
				found = true
			} else {
				r = r.Union(px)
			}
		}
	}
	return r, found
}
