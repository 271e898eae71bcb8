package track

import "github.com/Faultbox/ridgeline/pkg/math"

// Checkpoint is a numbered gate placed on the track.
type Checkpoint struct {
	Number   int
	Waypoint int // index into the path
	Position math.Vec3
}

// HeightFunc reports the terrain height at a world position.
type HeightFunc func(x, z float32) (float32, bool)

// Checkpoints places a checkpoint on every every-th waypoint and on the last
// waypoint, lifted to the terrain surface. Waypoints with no terrain beneath
// them are skipped. Numbers start at 1 and stay contiguous; 0 is left for the
// start line.
func Checkpoints(p Path, every int, height HeightFunc) []Checkpoint {
	if every <= 0 {
		every = 1
	}

	var out []Checkpoint
	for i, w := range p {
		last := i == len(p)-1
		if (i+1)%every != 0 && !last {
			continue
		}
		h, ok := height(w.X, w.Y)
		if !ok {
			continue
		}
		out = append(out, Checkpoint{
			Number:   len(out) + 1,
			Waypoint: i,
			Position: math.Vec3{X: w.X, Y: h, Z: w.Y},
		})
	}
	return out
}
