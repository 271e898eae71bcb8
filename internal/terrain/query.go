package terrain

import (
	gomath "math"

	"github.com/Faultbox/ridgeline/pkg/math"
)

// Query is the read-only view of a finished grid. Once geometry has been built
// nothing writes to the grid again, so a Query may be shared by any number of
// goroutines without locking.
type Query struct {
	grid *Grid
}

// Sample is one flattened neighborhood entry. Kind is the band number, or -1
// where the position is off the terrain.
type Sample struct {
	Height float32
	Kind   int
}

// NewQuery wraps a finished grid.
func NewQuery(g *Grid) *Query {
	return &Query{grid: g}
}

// Size returns the number of cells along each axis.
func (q *Query) Size() int {
	return q.grid.size
}

// Scale returns the world size of one cell.
func (q *Query) Scale() float32 {
	return q.grid.scale
}

// Dimensions returns the world-space min and max corners of the terrain.
func (q *Query) Dimensions() (min, max math.Vec2) {
	return q.grid.Dimensions()
}

// Height returns the height of the cell containing world position (x, z).
func (q *Query) Height(x, z float32) (float32, bool) {
	return q.grid.Height(x, z)
}

// Cell returns a copy of the cell containing world position (x, z).
func (q *Query) Cell(x, z float32) (Cell, bool) {
	ix, iz, ok := q.grid.WorldToIndex(x, z)
	if !ok {
		return Cell{}, false
	}
	return q.grid.Cell(ix, iz)
}

// CellAt returns a copy of the cell at grid index (ix, iz).
func (q *Query) CellAt(ix, iz int) (Cell, bool) {
	return q.grid.Cell(ix, iz)
}

// Neighborhood returns copies of the cells around world position (x, z).
func (q *Query) Neighborhood(x, z float32, radius int) Neighborhood {
	return q.grid.Neighborhood(x, z, radius)
}

// HeightRange returns the lowest and highest cell heights.
func (q *Query) HeightRange() (min, max float32) {
	return q.grid.HeightRange()
}

// Surroundings flattens the neighborhood around (x, z) row by row, the way
// remote telemetry reports the terrain around a vehicle.
func (q *Query) Surroundings(x, z float32, radius int) []Sample {
	n := q.grid.Neighborhood(x, z, radius)
	samples := make([]Sample, 0, len(n)*len(n))
	for _, row := range n {
		for _, c := range row {
			if c == nil {
				samples = append(samples, Sample{Height: 0, Kind: -1})
				continue
			}
			samples = append(samples, Sample{Height: c.Height, Kind: int(c.Band)})
		}
	}
	return samples
}

// InterpolatedHeight returns the terrain height at a world position using
// bilinear interpolation between cell centres. Positions outside the terrain
// return false; positions in the outer half cell use the edge value.
func (q *Query) InterpolatedHeight(x, z float32) (float32, bool) {
	g := q.grid
	if _, _, ok := g.WorldToIndex(x, z); !ok {
		return 0, false
	}
	if g.size == 1 {
		return g.cells[0].Height, true
	}

	// Continuous cell coordinates with cell centres on integers
	cellFX := (float64(x)+g.half)/float64(g.scale) - 0.5
	cellFZ := (float64(z)+g.half)/float64(g.scale) - 0.5

	cellX := clampi(int(gomath.Floor(cellFX)), 0, g.size-2)
	cellZ := clampi(int(gomath.Floor(cellFZ)), 0, g.size-2)

	fracX := clampf(float32(cellFX-float64(cellX)), 0, 1)
	fracZ := clampf(float32(cellFZ-float64(cellZ)), 0, 1)

	h00 := g.cells[cellZ*g.size+cellX].Height
	h10 := g.cells[cellZ*g.size+cellX+1].Height
	h01 := g.cells[(cellZ+1)*g.size+cellX].Height
	h11 := g.cells[(cellZ+1)*g.size+cellX+1].Height

	// Lerp along X on both rows, then along Z
	near := h00*(1-fracX) + h10*fracX
	far := h01*(1-fracX) + h11*fracX
	return near*(1-fracZ) + far*fracZ, true
}

func clampi(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
