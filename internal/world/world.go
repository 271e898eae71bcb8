// Package world runs the one-shot generation pipeline: noise, terrain, track,
// road carving, geometry and the read-only query surface.
package world

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ridgeline/internal/config"
	"github.com/Faultbox/ridgeline/internal/logger"
	"github.com/Faultbox/ridgeline/internal/noise"
	"github.com/Faultbox/ridgeline/internal/terrain"
	"github.com/Faultbox/ridgeline/internal/track"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Pipeline errors.
var (
	ErrNoStartHeight = errors.New("no terrain under the start line")
)

// StartBlockSize is the edge length of the start block cube.
const StartBlockSize = 4

// Start is the block marking the start line. Position is the block centre;
// the block sits half sunk into the terrain on the +Z edge.
type Start struct {
	Position math.Vec3
	Size     float32
}

// Stats summarizes a generation run. Heights and bands describe the terrain
// before the road was carved.
type Stats struct {
	MinHeight   float32
	MaxHeight   float32
	Bands       map[terrain.Band]int
	Carve       terrain.CarveStats
	TrackLength float32
	Elapsed     time.Duration
}

// World is the finished, read-only result of Generate.
type World struct {
	Seed      uint32
	Query     *terrain.Query
	Path      track.Path
	Render    *terrain.RenderGeometry
	Collision *terrain.CollisionGeometry
	Start     Start
	// Checkpoints[0] is the start line; the rest follow the track.
	Checkpoints []track.Checkpoint
	Stats       Stats
}

// Generate builds a world from cfg. A nil atlas uses terrain.DefaultAtlas.
// The grid is carved before any geometry is built and never written after.
func Generate(cfg *config.Config, atlas terrain.TextureAtlas) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.Named("world")
	began := time.Now()
	seed := cfg.Terrain.Seed

	done := logger.Stage(log, "terrain")
	field, err := noise.NewField(seed, cfg.NoiseSettings())
	if err != nil {
		return nil, fmt.Errorf("creating noise field: %w", err)
	}
	grid, err := terrain.BuildFrom(cfg.Terrain.Size, cfg.Terrain.Scale, field, terrain.DefaultClassifier())
	if err != nil {
		return nil, fmt.Errorf("building terrain: %w", err)
	}
	minH, maxH := grid.HeightRange()
	bands := grid.BandCounts()
	done(zap.Uint32("seed", seed),
		zap.Int("size", grid.Size()),
		zap.Float32("scale", grid.Scale()),
		zap.Float32("min_height", minH),
		zap.Float32("max_height", maxH),
		zap.Float64("max_amplitude", field.MaxAmplitude()))

	_, upper := grid.Dimensions()
	startLine := StartLine(cfg)

	done = logger.Stage(log, "track")
	path := Track(cfg)
	done(zap.Int("waypoints", len(path)),
		zap.Float32("length", path.Length()))

	done = logger.Stage(log, "carve")
	carve := terrain.CarveRoad(grid, path, cfg.Road.Radius)
	done(zap.Int("radius", cfg.Road.Radius),
		zap.Int("points", carve.Points),
		zap.Int("windows", carve.Windows),
		zap.Int("skipped", carve.Skipped))

	edgeHeight, ok := grid.Height(startLine.X, startLine.Y)
	if !ok {
		return nil, fmt.Errorf("%w: (%v, %v) is outside a %d×%v grid",
			ErrNoStartHeight, startLine.X, startLine.Y, grid.Size(), grid.Scale())
	}
	start := Start{
		Position: math.Vec3{X: 0, Y: edgeHeight - StartBlockSize/2, Z: upper.Y},
		Size:     StartBlockSize,
	}

	done = logger.Stage(log, "mesh")
	render, collision := terrain.BuildGeometry(grid, atlas, terrain.MeshOptions{
		SmoothNormals: cfg.Mesh.SmoothNormals,
	})
	done(zap.Bool("smooth_normals", cfg.Mesh.SmoothNormals))
	query := terrain.NewQuery(grid)

	checkpoints := []track.Checkpoint{{Number: 0, Waypoint: -1, Position: start.Position}}
	if cfg.Track.CheckpointEvery > 0 {
		checkpoints = append(checkpoints, track.Checkpoints(path, cfg.Track.CheckpointEvery, query.Height)...)
	}

	w := &World{
		Seed:        seed,
		Query:       query,
		Path:        path,
		Render:      render,
		Collision:   collision,
		Start:       start,
		Checkpoints: checkpoints,
		Stats: Stats{
			MinHeight:   minH,
			MaxHeight:   maxH,
			Bands:       bands,
			Carve:       carve,
			TrackLength: path.Length(),
			Elapsed:     time.Since(began),
		},
	}

	log.Info("world generated",
		zap.Uint32("seed", seed),
		zap.Int("vertices", render.VertexCount()),
		zap.Int("triangles", render.TriangleCount()),
		zap.Int("checkpoints", len(checkpoints)),
		zap.Duration("elapsed", w.Stats.Elapsed))
	return w, nil
}

// StartLine returns the point one unit inside the +Z edge of the configured
// terrain, where the start block stands.
func StartLine(cfg *config.Config) math.Vec2 {
	half := float64(cfg.Terrain.Size) * float64(cfg.Terrain.Scale) / 2
	return math.Vec2{X: 0, Y: float32(half) - 1}
}

// Track walks the configured track without building any terrain. It heads
// towards -Z from the start line, or from start_x/start_z when auto start is
// off.
func Track(cfg *config.Config) track.Path {
	from := StartLine(cfg)
	if !cfg.Track.AutoStart {
		from = math.Vec2{X: cfg.Track.StartX, Y: cfg.Track.StartZ}
	}
	gen := track.NewGenerator(cfg.Terrain.Seed, track.Options{
		StepLength: cfg.Track.StepLength,
		Heading:    math.Vec2{X: 0, Y: -1},
	})
	return gen.Walk(from, cfg.Track.Steps)
}
