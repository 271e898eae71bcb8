package main

import (
	"image/color"

	"github.com/Faultbox/ridgeline/internal/terrain"
)

// Band colors for the heightmap preview
var (
	BandColorGrass    = color.RGBA{R: 86, G: 150, B: 62, A: 255}   // Green
	BandColorDryGrass = color.RGBA{R: 170, G: 160, B: 80, A: 255}  // Straw
	BandColorGravel   = color.RGBA{R: 140, G: 130, B: 115, A: 255} // Gray-brown
	BandColorRock     = color.RGBA{R: 105, G: 100, B: 100, A: 255} // Dark gray
	BandColorSnow     = color.RGBA{R: 240, G: 244, B: 250, A: 255} // White
	BandColorRoad     = color.RGBA{R: 40, G: 40, B: 44, A: 255}    // Asphalt
	BandColorUnknown  = color.RGBA{R: 255, G: 0, B: 255, A: 255}   // Magenta
)

// bandColor returns the preview color of b.
func bandColor(b terrain.Band) color.RGBA {
	switch b {
	case terrain.BandGrass:
		return BandColorGrass
	case terrain.BandDryGrass:
		return BandColorDryGrass
	case terrain.BandGravel:
		return BandColorGravel
	case terrain.BandRock:
		return BandColorRock
	case terrain.BandSnow:
		return BandColorSnow
	case terrain.BandRoad:
		return BandColorRoad
	default:
		return BandColorUnknown
	}
}

// bandMark returns a one-letter tag for query output.
func bandMark(b terrain.Band) string {
	switch b {
	case terrain.BandGrass:
		return "g"
	case terrain.BandDryGrass:
		return "d"
	case terrain.BandGravel:
		return "v"
	case terrain.BandRock:
		return "r"
	case terrain.BandSnow:
		return "s"
	case terrain.BandRoad:
		return "#"
	default:
		return "?"
	}
}
