package terrain

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/ridgeline/pkg/math"
)

func TestBuildRenderGeometry_Counts(t *testing.T) {
	g := flatGrid(t, 4, 0)
	geo := BuildRenderGeometry(g, nil)

	if geo.VertexCount() != 4*4*4 {
		t.Errorf("VertexCount = %d, want 64", geo.VertexCount())
	}
	if geo.TriangleCount() != 4*4*2 {
		t.Errorf("TriangleCount = %d, want 32", geo.TriangleCount())
	}
	if len(geo.Normals) != geo.VertexCount() || len(geo.UVs) != geo.VertexCount() {
		t.Errorf("attribute lengths: normals %d, uvs %d", len(geo.Normals), len(geo.UVs))
	}
	for _, idx := range geo.Indices {
		if int(idx) >= geo.VertexCount() {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestBuildGeometry_RenderCollisionParity(t *testing.T) {
	g, _ := Build(12, 1.5, 3)
	render, collision := BuildGeometry(g, nil, MeshOptions{SmoothNormals: true})

	if len(render.Positions) != len(collision.Positions) {
		t.Fatalf("positions: %d vs %d", len(render.Positions), len(collision.Positions))
	}
	for i := range render.Positions {
		if render.Positions[i] != collision.Positions[i] {
			t.Fatalf("position %d differs", i)
		}
	}
	if len(render.Indices) != len(collision.Indices) {
		t.Fatalf("indices: %d vs %d", len(render.Indices), len(collision.Indices))
	}
	for i := range render.Indices {
		if render.Indices[i] != collision.Indices[i] {
			t.Fatalf("index %d differs", i)
		}
	}

	separate := BuildCollisionGeometry(g)
	for i := range separate.Positions {
		if separate.Positions[i] != collision.Positions[i] {
			t.Fatalf("standalone collision position %d differs", i)
		}
	}
}

func TestBuildRenderGeometry_FlatNormalsUp(t *testing.T) {
	g := flatGrid(t, 3, 2)
	geo := BuildRenderGeometry(g, nil)

	for i, n := range geo.Normals {
		if n != [3]float32{0, 1, 0} {
			t.Errorf("normal %d = %v, want (0,1,0)", i, n)
		}
	}
	for i, p := range geo.Positions {
		if p[1] != 2 {
			t.Errorf("vertex %d height = %v, want 2", i, p[1])
		}
	}
}

func TestBuildCollisionGeometry_WindingFacesUp(t *testing.T) {
	g, _ := Build(8, 1, 3)
	geo := BuildCollisionGeometry(g)

	for i, tri := range geo.Triangles() {
		a := math.Vec3FromArray(geo.Positions[tri[0]])
		b := math.Vec3FromArray(geo.Positions[tri[1]])
		c := math.Vec3FromArray(geo.Positions[tri[2]])
		if n := b.Sub(a).Cross(c.Sub(a)); !(n.Y > 0) {
			t.Fatalf("triangle %d faces down: normal %v", i, n)
		}
	}
}

func TestBuildRenderGeometry_LayoutAndUVs(t *testing.T) {
	g := flatGrid(t, 2, 2.5) // Gravel
	atlas := AtlasFunc(func(b Band) UVRect {
		return UVRect{Left: float32(b), Right: float32(b) + 1, Bottom: 1, Top: 0}
	})
	geo := BuildRenderGeometry(g, atlas)

	// Cell (1,0) is the second quad
	base := 4
	wantPos := [4][3]float32{{0, 2.5, -1}, {1, 2.5, -1}, {0, 2.5, 0}, {1, 2.5, 0}}
	for i, want := range wantPos {
		if got := geo.Positions[base+i]; got != want {
			t.Errorf("vertex %d = %v, want %v", i, got, want)
		}
	}

	l := float32(BandGravel)
	wantUV := [4][2]float32{{l, 1}, {l + 1, 1}, {l, 0}, {l + 1, 0}}
	for i, want := range wantUV {
		if got := geo.UVs[base+i]; got != want {
			t.Errorf("uv %d = %v, want %v", i, got, want)
		}
	}

	wantIdx := []uint32{4, 6, 5, 6, 7, 5}
	for i, want := range wantIdx {
		if got := geo.Indices[6+i]; got != want {
			t.Errorf("index %d = %d, want %d", i, got, want)
		}
	}
}

func TestBuildRenderGeometry_Bounds(t *testing.T) {
	g := flatGrid(t, 4, 2)
	b := BuildRenderGeometry(g, nil).Bounds

	if b.Min != [3]float32{-2, 2, -2} || b.Max != [3]float32{2, 2, 2} {
		t.Errorf("Bounds = %+v", b)
	}
}

func TestBuildRenderGeometry_SeamsMatch(t *testing.T) {
	g, _ := Build(10, 1, 5)
	geo := BuildRenderGeometry(g, nil)
	min, max := g.Dimensions()

	heights := make(map[[2]float32]float32)
	for _, p := range geo.Positions {
		if p[0] == min.X || p[0] == max.X || p[2] == min.Y || p[2] == max.Y {
			continue
		}
		key := [2]float32{p[0], p[2]}
		if h, seen := heights[key]; seen && h != p[1] {
			t.Fatalf("seam at %v: heights %v and %v", key, h, p[1])
		}
		heights[key] = p[1]
	}
	if len(heights) != 9*9 {
		t.Errorf("interior corners = %d, want 81", len(heights))
	}
}

func TestGrid_CornerHeight(t *testing.T) {
	g := rampGrid(t, 5)

	tests := []struct {
		name   string
		cx, cz int
		own    float32
		want   float32
	}{
		{"interior", 2, 2, 1, 1.5},
		{"min corner", 0, 0, 0, 0},
		{"left edge", 0, 2, 5, 2.5},
		{"max corner", 5, 5, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.cornerHeight(tt.cx, tt.cz, tt.own); got != tt.want {
				t.Errorf("cornerHeight = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuadNormals_Degenerate(t *testing.T) {
	p := math.Vec3{X: 1, Y: 1, Z: 1}
	for i, n := range quadNormals([4]math.Vec3{p, p, p, p}) {
		if n != (math.Vec3{}) {
			t.Errorf("normal %d = %v, want zero vector", i, n)
		}
	}
}

func TestQuadNormals_SharedVertices(t *testing.T) {
	// Fold along the shared diagonal so the two faces differ
	c := [4]math.Vec3{
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 1},
	}
	n := quadNormals(c)
	if n[0] == n[3] {
		t.Fatal("faces should differ")
	}
	if n[1] != n[2] {
		t.Errorf("shared vertices differ: %v vs %v", n[1], n[2])
	}
	for i, v := range n {
		if l := v.Length(); gomath.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("normal %d length = %v", i, l)
		}
	}
}

func TestSmoothNormals(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}}
	normals := [][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	SmoothNormals(positions, normals)

	const s = 0.70710677
	for i := range 2 {
		if gomath.Abs(float64(normals[i][0]-s)) > 1e-6 || gomath.Abs(float64(normals[i][1]-s)) > 1e-6 {
			t.Errorf("normal %d = %v, want (%v,%v,0)", i, normals[i], s, s)
		}
	}
	if normals[2] != [3]float32{0, 0, 1} {
		t.Errorf("lone vertex normal changed: %v", normals[2])
	}
}

func TestBuildGeometry_SmoothingLeavesSurface(t *testing.T) {
	g, _ := Build(6, 1, 9)
	smooth, _ := BuildGeometry(g, nil, MeshOptions{SmoothNormals: true})
	flat := BuildRenderGeometry(g, nil)

	for i := range smooth.Positions {
		if smooth.Positions[i] != flat.Positions[i] {
			t.Fatalf("position %d differs", i)
		}
		if l := math.Vec3FromArray(smooth.Normals[i]).Length(); gomath.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("smoothed normal %d length = %v", i, l)
		}
	}
}
