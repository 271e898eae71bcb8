package terrain

import gomath "math"

// Neighborhood is a (2r+1)×(2r+1) window of cells around a centre cell.
// Rows are indexed by z offset and columns by x offset, both shifted by r.
// Entries outside the grid are nil.
type Neighborhood [][]*Cell

// Radius returns r.
func (n Neighborhood) Radius() int {
	return (len(n) - 1) / 2
}

// At returns the cell at offset (dx, dz) from the centre, or nil.
func (n Neighborhood) At(dx, dz int) *Cell {
	r := n.Radius()
	if dx < -r || dx > r || dz < -r || dz > r {
		return nil
	}
	return n[dz+r][dx+r]
}

// Valid returns copies of the in-bounds cells in row-major order.
func (n Neighborhood) Valid() []Cell {
	var cells []Cell
	for _, row := range n {
		for _, c := range row {
			if c != nil {
				cells = append(cells, *c)
			}
		}
	}
	return cells
}

// Neighborhood returns the window of radius cells around the cell containing
// world position (x, z). The window always has (2·radius+1)² entries; positions
// outside the grid are nil, never clamped or wrapped. A negative radius is
// treated as 0.
func (g *Grid) Neighborhood(x, z float32, radius int) Neighborhood {
	if radius < 0 {
		radius = 0
	}
	ix, okX := g.clampedFloorIndex(x, radius)
	iz, okZ := g.clampedFloorIndex(z, radius)
	if !okX || !okZ {
		return emptyNeighborhood(radius)
	}
	return g.NeighborhoodAt(ix, iz, radius)
}

// NeighborhoodAt is Neighborhood for a grid index centre. The centre itself may
// lie outside the grid.
func (g *Grid) NeighborhoodAt(ix, iz, radius int) Neighborhood {
	if radius < 0 {
		radius = 0
	}
	n := emptyNeighborhood(radius)
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			if c, ok := g.Cell(ix+dx, iz+dz); ok {
				n[dz+radius][dx+radius] = &c
			}
		}
	}
	return n
}

// clampedFloorIndex converts a world coordinate to a cell index, pulling
// far-away values in to just past the window reach so the int conversion
// cannot overflow. The clamped index still yields an all-nil window.
func (g *Grid) clampedFloorIndex(w float32, radius int) (int, bool) {
	f := g.floorIndex(w)
	if gomath.IsNaN(f) {
		return 0, false
	}
	lo, hi := float64(-radius-1), float64(g.size+radius)
	if f < lo {
		f = lo
	}
	if f > hi {
		f = hi
	}
	return int(f), true
}

func emptyNeighborhood(radius int) Neighborhood {
	side := 2*radius + 1
	n := make(Neighborhood, side)
	for i := range n {
		n[i] = make([]*Cell, side)
	}
	return n
}
