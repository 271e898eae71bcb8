package terrain

import (
	gomath "math"

	"gonum.org/v1/gonum/stat"

	"github.com/Faultbox/ridgeline/pkg/math"
)

// surface is the intermediate buffer both geometries are cut from.
type surface struct {
	positions [][3]float32
	normals   [][3]float32
	indices   []uint32
	bands     []Band // one per quad
	bounds    Bounds
}

// BuildGeometry builds the render mesh and the collision trimesh from one
// shared surface. The two results share their position and index arrays;
// callers must treat them as read-only.
func BuildGeometry(g *Grid, atlas TextureAtlas, opts MeshOptions) (*RenderGeometry, *CollisionGeometry) {
	s := buildSurface(g)
	return s.render(atlas, opts), s.collision()
}

// BuildRenderGeometry builds the render mesh of g with UVs from atlas.
// A nil atlas uses DefaultAtlas.
func BuildRenderGeometry(g *Grid, atlas TextureAtlas) *RenderGeometry {
	return buildSurface(g).render(atlas, MeshOptions{})
}

// BuildCollisionGeometry builds the collision trimesh of g. Positions and
// indices match BuildRenderGeometry of the same grid element for element.
func BuildCollisionGeometry(g *Grid) *CollisionGeometry {
	return buildSurface(g).collision()
}

// buildSurface emits one quad of four unshared vertices per cell.
func buildSurface(g *Grid) *surface {
	quads := g.size * g.size
	s := &surface{
		positions: make([][3]float32, 0, quads*4),
		normals:   make([][3]float32, 0, quads*4),
		indices:   make([]uint32, 0, quads*6),
		bands:     make([]Band, 0, quads),
		bounds:    emptyBounds(),
	}

	for iz := range g.size {
		z0, z1 := g.edge(iz), g.edge(iz+1)
		for ix := range g.size {
			cell := g.cells[iz*g.size+ix]
			x0, x1 := g.edge(ix), g.edge(ix+1)

			// Corners: 0=(x0,z0) 1=(x1,z0) 2=(x0,z1) 3=(x1,z1)
			corners := [4]math.Vec3{
				{X: x0, Y: g.cornerHeight(ix, iz, cell.Height), Z: z0},
				{X: x1, Y: g.cornerHeight(ix+1, iz, cell.Height), Z: z0},
				{X: x0, Y: g.cornerHeight(ix, iz+1, cell.Height), Z: z1},
				{X: x1, Y: g.cornerHeight(ix+1, iz+1, cell.Height), Z: z1},
			}
			normals := quadNormals(corners)

			baseIdx := uint32(len(s.positions))
			for i, c := range corners {
				p := c.Array()
				s.positions = append(s.positions, p)
				s.normals = append(s.normals, normals[i].Array())
				updateBounds(&s.bounds, p)
			}

			// Two triangles: (0,2,1) and (2,3,1), counter-clockwise seen from +Y
			s.indices = append(s.indices,
				baseIdx, baseIdx+2, baseIdx+1,
				baseIdx+2, baseIdx+3, baseIdx+1,
			)
			s.bands = append(s.bands, cell.Band)
		}
	}
	return s
}

// cornerHeight returns the height of lattice corner (cx, cz): the mean of the
// up to four cells touching it. Off-grid cells count as own, the height of the
// quad being built, so boundary quads do not bow outward. The cells are always
// summed in the same order, so interior corners come out bit-identical for
// every quad that shares them.
func (g *Grid) cornerHeight(cx, cz int, own float32) float32 {
	var h [4]float64
	for i, off := range [4][2]int{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}} {
		h[i] = float64(own)
		if c, ok := g.Cell(cx+off[0], cz+off[1]); ok {
			h[i] = float64(c.Height)
		}
	}
	return float32(stat.Mean(h[:], nil))
}

// quadNormals returns per-vertex normals for a quad triangulated as (0,2,1),
// (2,3,1). Vertices 1 and 2 border both triangles and get the normalized sum
// of both face normals.
func quadNormals(c [4]math.Vec3) [4]math.Vec3 {
	first := faceNormal(c[0], c[2], c[1])
	second := faceNormal(c[2], c[3], c[1])
	shared := first.Add(second).Normalize()
	return [4]math.Vec3{first, shared, shared, second}
}

// faceNormal returns the unit normal at a of the triangle spanned by a→b and
// a→c, or the zero vector for degenerate triangles.
func faceNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

func (s *surface) render(atlas TextureAtlas, opts MeshOptions) *RenderGeometry {
	if atlas == nil {
		atlas = DefaultAtlas()
	}

	uvs := make([][2]float32, 0, len(s.positions))
	for _, band := range s.bands {
		r := atlas.Lookup(band)
		uvs = append(uvs,
			[2]float32{r.Left, r.Bottom},
			[2]float32{r.Right, r.Bottom},
			[2]float32{r.Left, r.Top},
			[2]float32{r.Right, r.Top},
		)
	}

	normals := s.normals
	if opts.SmoothNormals {
		normals = append([][3]float32(nil), s.normals...)
		SmoothNormals(s.positions, normals)
	}

	return &RenderGeometry{
		Positions: s.positions,
		Normals:   normals,
		UVs:       uvs,
		Indices:   s.indices,
		Bounds:    s.bounds,
	}
}

func (s *surface) collision() *CollisionGeometry {
	return &CollisionGeometry{
		Positions: s.positions,
		Indices:   s.indices,
	}
}

// SmoothNormals averages normals of vertices at identical positions.
// Interior quad corners are bit-identical, so exact positions are used as keys.
func SmoothNormals(positions, normals [][3]float32) {
	posMap := make(map[[3]float32][]int, len(positions)/4+1)
	for i, p := range positions {
		posMap[p] = append(posMap[p], i)
	}

	for _, indices := range posMap {
		if len(indices) < 2 {
			continue
		}

		var sum math.Vec3
		for _, idx := range indices {
			sum = sum.Add(math.Vec3FromArray(normals[idx]))
		}

		avg := sum.Normalize().Array()
		for _, idx := range indices {
			normals[idx] = avg
		}
	}
}

func emptyBounds() Bounds {
	inf := float32(gomath.Inf(1))
	return Bounds{
		Min: [3]float32{inf, inf, inf},
		Max: [3]float32{-inf, -inf, -inf},
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
