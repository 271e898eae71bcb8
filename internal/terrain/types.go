// Package terrain stores the generated height field and turns it into
// render and collision geometry.
package terrain

// Cell is one grid square of the height field.
type Cell struct {
	Height float32
	Band   Band
}

// UVRect is a rectangular region of a texture atlas.
// Top is the smaller V coordinate (image rows grow downwards).
type UVRect struct {
	Left, Right float32
	Bottom, Top float32
}

// Bounds holds the axis-aligned bounding box of generated geometry.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// RenderGeometry holds the terrain mesh ready for GPU upload.
// Positions, Normals and UVs are parallel arrays; Indices holds triangle triples.
type RenderGeometry struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
	Bounds    Bounds
}

// VertexCount returns the number of vertices.
func (g *RenderGeometry) VertexCount() int {
	return len(g.Positions)
}

// TriangleCount returns the number of triangles.
func (g *RenderGeometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// CollisionGeometry is the physics trimesh of the terrain. Its positions and
// indices are the same data as the paired RenderGeometry.
type CollisionGeometry struct {
	Positions [][3]float32
	Indices   []uint32
}

// Triangles returns the index buffer grouped into triangles.
func (g *CollisionGeometry) Triangles() [][3]uint32 {
	tris := make([][3]uint32, 0, len(g.Indices)/3)
	for i := 0; i+2 < len(g.Indices); i += 3 {
		tris = append(tris, [3]uint32{g.Indices[i], g.Indices[i+1], g.Indices[i+2]})
	}
	return tris
}

// MeshOptions tunes geometry building.
type MeshOptions struct {
	// SmoothNormals averages the normals of coincident vertices across quads.
	// Positions and indices are unaffected.
	SmoothNormals bool
}
