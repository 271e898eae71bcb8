// Package track generates the winding centreline of the race track.
package track

import (
	"fmt"
	gomath "math"
	"math/rand/v2"

	"github.com/Faultbox/ridgeline/pkg/math"
)

// Defaults for Generate.
const (
	DefaultSteps      = 50
	DefaultStepLength = 4.0
)

// pcgStream is the fixed PCG stream selector; the seed picks the state.
const pcgStream = 0x9e3779b97f4a7c15

// TurnState is the current steering mode of the random walk.
type TurnState uint8

// Turn states.
const (
	Straight TurnState = iota
	Left
	Right
)

// String returns the state name.
func (t TurnState) String() string {
	switch t {
	case Straight:
		return "Straight"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// Path is the ordered list of track waypoints on the XZ plane.
type Path []math.Vec2

// Length returns the summed distance between consecutive waypoints.
func (p Path) Length() float32 {
	var total float32
	for i := 1; i < len(p); i++ {
		total += p[i].Distance(p[i-1])
	}
	return total
}

// Options configures a Generator.
type Options struct {
	StepLength float32   // distance covered per step
	Heading    math.Vec2 // initial direction; only its orientation is used
}

// DefaultOptions heads towards -Z with DefaultStepLength steps.
func DefaultOptions() Options {
	return Options{
		StepLength: DefaultStepLength,
		Heading:    math.Vec2{X: 0, Y: -1},
	}
}

// Generator runs the biased random walk. The chance of re-drawing the turn
// state on a step is streak/10, so the walk settles into runs of straights and
// curves instead of jittering every step.
type Generator struct {
	rng       *rand.Rand
	direction math.Vec2
	length    float32
	turn      TurnState
	streak    int
}

// NewGeneratorWithRand creates a generator drawing from rng. Invalid options
// fall back to DefaultOptions values.
func NewGeneratorWithRand(rng *rand.Rand, opts Options) *Generator {
	def := DefaultOptions()
	length := opts.StepLength
	if !(length > 0) || gomath.IsInf(float64(length), 0) {
		length = def.StepLength
	}
	heading := opts.Heading
	if !heading.IsFinite() || heading.Length() == 0 {
		heading = def.Heading
	}

	return &Generator{
		rng:       rng,
		direction: heading.WithLength(length),
		length:    length,
		turn:      Straight,
		streak:    1,
	}
}

// NewGenerator creates a generator with its own PCG source for seed.
func NewGenerator(seed uint32, opts Options) *Generator {
	return NewGeneratorWithRand(rand.New(rand.NewPCG(uint64(seed), pcgStream)), opts)
}

// Generate walks steps waypoints from start with default options.
// The result always has exactly steps entries (none for steps <= 0).
func Generate(seed uint32, start math.Vec2, steps int) Path {
	return NewGenerator(seed, DefaultOptions()).Walk(start, steps)
}

// Walk advances steps times from start and returns the visited positions.
// The start itself is not included.
func (g *Generator) Walk(start math.Vec2, steps int) Path {
	if steps <= 0 {
		return Path{}
	}
	path := make(Path, 0, steps)
	pos := start
	for range steps {
		pos = g.Step(pos)
		path = append(path, pos)
	}
	return path
}

// Step performs one iteration of the walk from pos and returns the new position.
func (g *Generator) Step(pos math.Vec2) math.Vec2 {
	if g.rng.IntN(10) < g.streak {
		g.turn = TurnState(g.rng.IntN(3))
		g.streak = 1
	} else {
		g.streak++
	}

	switch g.turn {
	case Left:
		g.rotate(g.rng.Float64())
	case Right:
		g.rotate(-g.rng.Float64())
	}
	return pos.Add(g.direction)
}

// rotate turns the heading and pins its magnitude back to the step length.
func (g *Generator) rotate(angle float64) {
	g.direction = g.direction.Rotate(angle).WithLength(g.length)
}

// Direction returns the current heading vector.
func (g *Generator) Direction() math.Vec2 {
	return g.direction
}

// Turn returns the current turn state and how many steps it has lasted.
func (g *Generator) Turn() (TurnState, int) {
	return g.turn, g.streak
}
