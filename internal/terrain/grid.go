package terrain

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/ridgeline/internal/noise"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Grid construction errors.
var (
	ErrConfiguration = errors.New("invalid terrain configuration")
)

// HeightSource supplies the raw height of integer grid coordinates.
type HeightSource interface {
	Height(x, z int) float32
}

// HeightFunc adapts a plain function to HeightSource.
type HeightFunc func(x, z int) float32

// Height calls f(x, z).
func (f HeightFunc) Height(x, z int) float32 {
	return f(x, z)
}

// Grid is a square height field of size×size cells, centred on the world origin.
// Size and scale are fixed at construction; only cell contents change, and only
// while carving.
type Grid struct {
	cells []Cell // row-major: cells[z*size+x]
	size  int
	scale float32
	half  float64 // size*scale/2, the distance from origin to each edge
}

// Build samples the default noise field for seed over a size×size grid.
func Build(size int, scale float32, seed uint32) (*Grid, error) {
	if err := validateDimensions(size, scale); err != nil {
		return nil, err
	}
	return BuildFrom(size, scale, noise.NewDefaultField(seed), DefaultClassifier())
}

// BuildFrom samples src at every integer (x, z) in [0, size)² and classifies
// each cell with cls. A nil cls uses DefaultClassifier.
func BuildFrom(size int, scale float32, src HeightSource, cls *Classifier) (*Grid, error) {
	if err := validateDimensions(size, scale); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil height source", ErrConfiguration)
	}
	if cls == nil {
		cls = DefaultClassifier()
	}

	g := &Grid{
		cells: make([]Cell, size*size),
		size:  size,
		scale: scale,
		half:  float64(size) * float64(scale) / 2,
	}
	for z := range size {
		for x := range size {
			h := src.Height(x, z)
			g.cells[z*size+x] = Cell{Height: h, Band: cls.Classify(h)}
		}
	}
	return g, nil
}

func validateDimensions(size int, scale float32) error {
	if size <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %d", ErrConfiguration, size)
	}
	s := float64(scale)
	if !(s > 0) || gomath.IsInf(s, 0) {
		return fmt.Errorf("%w: scale must be a finite positive number, got %v", ErrConfiguration, scale)
	}
	return nil
}

// Size returns the number of cells along each axis.
func (g *Grid) Size() int {
	return g.size
}

// Scale returns the world size of one cell.
func (g *Grid) Scale() float32 {
	return g.scale
}

// Dimensions returns the world-space min and max corners of the grid.
func (g *Grid) Dimensions() (min, max math.Vec2) {
	h := float32(g.half)
	return math.Vec2{X: -h, Y: -h}, math.Vec2{X: h, Y: h}
}

// Cell returns the cell at grid index (ix, iz).
// Returns false if the index is out of bounds.
func (g *Grid) Cell(ix, iz int) (Cell, bool) {
	if ix < 0 || iz < 0 || ix >= g.size || iz >= g.size {
		return Cell{}, false
	}
	return g.cells[iz*g.size+ix], true
}

func (g *Grid) set(ix, iz int, c Cell) bool {
	if ix < 0 || iz < 0 || ix >= g.size || iz >= g.size {
		return false
	}
	g.cells[iz*g.size+ix] = c
	return true
}

// WorldToIndex maps a world position to the index of the cell containing it.
// Returns false outside the grid and for non-finite input.
func (g *Grid) WorldToIndex(x, z float32) (ix, iz int, ok bool) {
	fx, fz := g.floorIndex(x), g.floorIndex(z)
	limit := float64(g.size)
	if !(fx >= 0 && fx < limit) || !(fz >= 0 && fz < limit) {
		return 0, 0, false
	}
	return int(fx), int(fz), true
}

// floorIndex returns the unbounded cell coordinate of a world coordinate.
func (g *Grid) floorIndex(w float32) float64 {
	return gomath.Floor((float64(w) + g.half) / float64(g.scale))
}

// IndexToWorld returns the world position of the min corner of cell (ix, iz).
// Indices outside the grid extrapolate linearly.
func (g *Grid) IndexToWorld(ix, iz int) (x, z float32) {
	return g.edge(ix), g.edge(iz)
}

// CellCenter returns the world position of the centre of cell (ix, iz).
func (g *Grid) CellCenter(ix, iz int) math.Vec2 {
	s := float64(g.scale)
	return math.Vec2{
		X: float32((float64(ix)+0.5)*s - g.half),
		Y: float32((float64(iz)+0.5)*s - g.half),
	}
}

// edge returns the world coordinate of lattice line i.
func (g *Grid) edge(i int) float32 {
	return float32(float64(i)*float64(g.scale) - g.half)
}

// Height returns the height of the cell containing world position (x, z).
func (g *Grid) Height(x, z float32) (float32, bool) {
	ix, iz, ok := g.WorldToIndex(x, z)
	if !ok {
		return 0, false
	}
	return g.cells[iz*g.size+ix].Height, true
}

// HeightRange returns the lowest and highest cell heights.
func (g *Grid) HeightRange() (min, max float32) {
	min, max = float32(gomath.Inf(1)), float32(gomath.Inf(-1))
	for _, c := range g.cells {
		if c.Height < min {
			min = c.Height
		}
		if c.Height > max {
			max = c.Height
		}
	}
	return min, max
}

// BandCounts returns how many cells carry each band.
func (g *Grid) BandCounts() map[Band]int {
	counts := make(map[Band]int)
	for _, c := range g.cells {
		counts[c.Band]++
	}
	return counts
}
