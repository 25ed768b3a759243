package postprocess

import "image"

// RemoveSmallClusters zeroes out disconnected pixel groups smaller than
// minRatio of all non-transparent pixels. Sliver triangles that survive
// downsampling as isolated specks are the usual target.
func RemoveSmallClusters(img *image.NRGBA, minRatio float64) *image.NRGBA {
	if minRatio <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	labels, sizes, total := label(img)
	if len(sizes) <= 1 {
		return img
	}
	minSize := int(float64(total) * minRatio)

	result := image.NewNRGBA(b)
	copy(result.Pix, img.Pix)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l := labels[y*w+x]
			if l >= 0 && sizes[l] < minSize {
				i := y*result.Stride + x*4
				result.Pix[i], result.Pix[i+1], result.Pix[i+2], result.Pix[i+3] = 0, 0, 0, 0
			}
		}
	}
	return result
}

// label assigns an 8-connected component id to each non-transparent pixel
// (-1 for transparent) and returns component sizes plus the opaque total.
func label(img *image.NRGBA) (labels []int, sizes []int, total int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	labels = make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.Pix[y*img.Stride+x*4+3] > 0 {
				labels[y*w+x] = -2 // unvisited
				total++
			} else {
				labels[y*w+x] = -1
			}
		}
	}

	queue := make([]int, 0, 1024)
	for start := range labels {
		if labels[start] != -2 {
			continue
		}
		id := len(sizes)
		labels[start] = id
		queue = append(queue[:0], start)
		size := 0

		for len(queue) > 0 {
			curr := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			size++

			cx, cy := curr%w, curr/w
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := cx+dx, cy+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					ni := ny*w + nx
					if labels[ni] == -2 {
						labels[ni] = id
						queue = append(queue, ni)
					}
				}
			}
		}
		sizes = append(sizes, size)
	}
	return labels, sizes, total
}
