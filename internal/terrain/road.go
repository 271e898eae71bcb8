package terrain

import (
	gomath "math"

	"gonum.org/v1/gonum/stat"

	"github.com/Faultbox/ridgeline/pkg/math"
)

// DefaultRoadRadius is the half-width, in cells, of a carved road window.
const DefaultRoadRadius = 3

// CarveStats summarizes one CarveRoad run.
type CarveStats struct {
	Points  int // interpolated centreline points visited
	Windows int // windows flattened
	Skipped int // points off the grid or over an already carved window
}

// CarveRoad flattens a corridor of cells along path. The path is sampled every
// g.Scale() world units; around each sample the square window of radius cells
// is set to the mean height of its in-bounds cells and classified as BandRoad.
//
// Windows that are already entirely road are left untouched, so carving the
// same path again is a no-op. Carving must happen before geometry is built.
func CarveRoad(g *Grid, path []math.Vec2, radius int) CarveStats {
	var stats CarveStats
	if radius < 0 {
		radius = 0
	}
	side := 2*radius + 1
	scratch := make([]float64, 0, side*side)

	carve := func(p math.Vec2) {
		stats.Points++
		ix, iz, ok := g.WorldToIndex(p.X, p.Y)
		if !ok || !carveWindow(g, ix, iz, radius, scratch) {
			stats.Skipped++
			return
		}
		stats.Windows++
	}

	for i := 0; i+1 < len(path); i++ {
		for _, p := range between(path[i], path[i+1], g.scale) {
			carve(p)
		}
	}
	if len(path) > 0 {
		carve(path[len(path)-1])
	}
	return stats
}

// carveWindow flattens the window around (ix, iz). It reports false when the
// window had nothing left to carve.
func carveWindow(g *Grid, ix, iz, radius int, heights []float64) bool {
	heights = heights[:0]
	allRoad := true
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			c, ok := g.Cell(ix+dx, iz+dz)
			if !ok {
				continue
			}
			heights = append(heights, float64(c.Height))
			if c.Band != BandRoad {
				allRoad = false
			}
		}
	}
	if len(heights) == 0 || allRoad {
		return false
	}

	road := Cell{Height: float32(stat.Mean(heights, nil)), Band: BandRoad}
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			g.set(ix+dx, iz+dz, road)
		}
	}
	return true
}

// between returns points from a towards b spaced step apart, starting at a
// and stopping before b.
func between(a, b math.Vec2, step float32) []math.Vec2 {
	d := b.Sub(a)
	length := d.Length()
	if !(length > 0) || gomath.IsInf(float64(length), 0) || !(step > 0) {
		return nil
	}
	steps := int(gomath.Ceil(float64(length / step)))
	dir := d.Scale(step / length)

	points := make([]math.Vec2, 0, steps)
	for i := range steps {
		points = append(points, a.Add(dir.Scale(float32(i))))
	}
	return points
}
