package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/ridgeline/internal/terrain"
)

// renderHeightmap draws one pixel per cell, row z at image row z.
// Grayscale maps the height range to 0..255; the road is always drawn in
// BandColorRoad so the track stays visible.
func renderHeightmap(q *terrain.Query, bands bool) *image.RGBA {
	size := q.Size()
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	minH, maxH := q.HeightRange()
	span := maxH - minH
	if !(span > 0) {
		span = 1
	}

	for iz := range size {
		for ix := range size {
			c, _ := q.CellAt(ix, iz)
			switch {
			case bands || c.Band == terrain.BandRoad:
				img.SetRGBA(ix, iz, bandColor(c.Band))
			default:
				v := uint8((c.Height - minH) / span * 255)
				img.SetRGBA(ix, iz, color.RGBA{R: v, G: v, B: v, A: 255})
			}
		}
	}
	return img
}

// writeBMP encodes img to path.
func writeBMP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
