package terrain

import (
	"github.com/Faultbox/fractal-landscape/pkg/math"
)

// Triangle is a flat-shaded terrain face. Each triangle owns its vertices.
type Triangle struct {
	A, B, C math.Vec3
	Color   Color
}

// NewTriangle builds a triangle colored by the mean elevation of its vertices.
func NewTriangle(a, b, c math.Vec3) Triangle {
	avgHeight := (a.Z + b.Z + c.Z) / 3
	return Triangle{A: a, B: b, C: c, Color: Classify(avgHeight)}
}

// Vertices returns the three corners in winding order.
func (t Triangle) Vertices() [3]math.Vec3 {
	return [3]math.Vec3{t.A, t.B, t.C}
}

// Normal returns the unit face normal for the triangle's winding.
// Degenerate triangles return the zero vector.
func (t Triangle) Normal() math.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Mesh is the triangle output of BuildMesh.
type Mesh struct {
	// Triangles holds six triangles per grid cell in cell order:
	// the top pair followed by the side quad.
	Triangles []Triangle
	// Perimeter holds the walls that close the outer boundary down to the base.
	Perimeter []Triangle
	Bounds    Bounds
}

// All returns cell triangles followed by perimeter walls.
func (m *Mesh) All() []Triangle {
	all := make([]Triangle, 0, len(m.Triangles)+len(m.Perimeter))
	all = append(all, m.Triangles...)
	return append(all, m.Perimeter...)
}

// Len returns the total number of triangles, perimeter included.
func (m *Mesh) Len() int {
	return len(m.Triangles) + len(m.Perimeter)
}

// ColorCounts returns how many triangles of each surface class the mesh holds.
func (m *Mesh) ColorCounts() map[Color]int {
	counts := make(map[Color]int, len(Colors))
	for _, t := range m.Triangles {
		counts[t.Color]++
	}
	for _, t := range m.Perimeter {
		counts[t.Color]++
	}
	return counts
}
