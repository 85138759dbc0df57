package terrain

import (
	"errors"
	"fmt"

	"github.com/Faultbox/fractal-landscape/pkg/math"
)

// Mesh errors.
var (
	ErrNilGrid          = errors.New("height grid is nil")
	ErrInvalidFootprint = errors.New("footprint size must be finite and > 0")
)

// BuildMesh turns a height grid into colored triangles over a square
// footprint of the given edge length, centered on the origin, with skirt
// walls dropping to a base plane at height 0.
func BuildMesh(grid *HeightGrid, footprintSize float64) (*Mesh, error) {
	return BuildMeshWithBase(grid, footprintSize, 0)
}

// BuildMeshWithBase is BuildMesh with a custom base plane height.
func BuildMeshWithBase(grid *HeightGrid, footprintSize, baseHeight float64) (*Mesh, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if grid.Side() < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSide, grid.Side())
	}
	if !isFinite(footprintSize) || footprintSize <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFootprint, footprintSize)
	}

	n := grid.Side()
	step := footprintSize / float64(n-1)
	cells := (n - 1) * (n - 1)

	// point maps grid coordinates to world space.
	point := func(x, y int) math.Vec3 {
		return math.Vec3{
			X: float64(x)*step - footprintSize/2,
			Y: float64(y)*step - footprintSize/2,
			Z: grid.At(x, y),
		}
	}

	triangles := make([]Triangle, 0, cells*6)
	for x := 0; x < n-1; x++ {
		for y := 0; y < n-1; y++ {
			p1 := point(x, y)
			p2 := point(x+1, y)
			p3 := point(x, y+1)
			p4 := point(x+1, y+1)

			// Top surface, split along the p2-p3 diagonal
			triangles = append(triangles,
				NewTriangle(p1, p2, p3),
				NewTriangle(p2, p4, p3),
			)

			triangles = appendSideQuad(triangles, p1, p2, p3, baseHeight)
		}
	}

	perimeter := buildPerimeter(n, point, baseHeight)

	return &Mesh{
		Triangles: triangles,
		Perimeter: perimeter,
		Bounds:    meshBounds(triangles, perimeter),
	}, nil
}

// appendSideQuad drops the a-b edge of a top triangle to the base plane.
func appendSideQuad(dst []Triangle, a, b, c math.Vec3, baseHeight float64) []Triangle {
	aBase := a.WithZ(baseHeight)
	bBase := b.WithZ(baseHeight)
	cBase := c.WithZ(baseHeight)

	return append(dst,
		NewTriangle(a, b, aBase),
		NewTriangle(b, bBase, aBase),
		NewTriangle(aBase, bBase, cBase),
		NewTriangle(aBase, cBase, c),
	)
}

// buildPerimeter emits a wall pair under every unit segment of the outer
// boundary, walking it counter-clockwise from (0,0).
func buildPerimeter(n int, point func(x, y int) math.Vec3, baseHeight float64) []Triangle {
	walls := make([]Triangle, 0, 4*(n-1)*2)

	wall := func(a, b math.Vec3) {
		aBase := a.WithZ(baseHeight)
		bBase := b.WithZ(baseHeight)
		walls = append(walls,
			NewTriangle(a, b, aBase),
			NewTriangle(b, bBase, aBase),
		)
	}

	last := n - 1
	for x := 0; x < last; x++ {
		wall(point(x, 0), point(x+1, 0))
	}
	for y := 0; y < last; y++ {
		wall(point(last, y), point(last, y+1))
	}
	for x := last; x > 0; x-- {
		wall(point(x, last), point(x-1, last))
	}
	for y := last; y > 0; y-- {
		wall(point(0, y), point(0, y-1))
	}

	return walls
}

func meshBounds(sets ...[]Triangle) Bounds {
	var b Bounds
	first := true
	for _, set := range sets {
		for _, t := range set {
			for _, v := range t.Vertices() {
				if first {
					b = Bounds{Min: v, Max: v}
					first = false
					continue
				}
				b.Min = b.Min.Min(v)
				b.Max = b.Max.Max(v)
			}
		}
	}
	return b
}
