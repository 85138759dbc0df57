// Package terrain generates Diamond-Square height grids and turns them into
// colored, skirted triangle meshes.
package terrain

import (
	"errors"
	"fmt"
	"math"
)

// Grid errors.
var (
	ErrInvalidGridSide = errors.New("grid side must be at least 2")
	ErrRaggedGrid      = errors.New("grid rows must all have the grid's side length")
)

// HeightGrid is a square grid of elevations indexed by (x, y).
// Values are stored in a single slice sized once at construction.
type HeightGrid struct {
	side   int
	values []float64
}

// NewHeightGrid allocates a zeroed grid with the given side length.
func NewHeightGrid(side int) (*HeightGrid, error) {
	if side < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSide, side)
	}
	return &HeightGrid{
		side:   side,
		values: make([]float64, side*side),
	}, nil
}

// GridFromValues builds a grid from a [x][y] slice of heights.
// The input is copied.
func GridFromValues(values [][]float64) (*HeightGrid, error) {
	g, err := NewHeightGrid(len(values))
	if err != nil {
		return nil, err
	}
	for x, col := range values {
		if len(col) != g.side {
			return nil, fmt.Errorf("%w: column %d has %d values, want %d", ErrRaggedGrid, x, len(col), g.side)
		}
		copy(g.values[x*g.side:(x+1)*g.side], col)
	}
	return g, nil
}

// Side returns the number of points along each edge.
func (g *HeightGrid) Side() int {
	return g.side
}

// InBounds reports whether (x, y) addresses a point of the grid.
func (g *HeightGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.side && y < g.side
}

// At returns the height at (x, y). It panics if the point is outside the grid.
func (g *HeightGrid) At(x, y int) float64 {
	return g.values[g.index(x, y)]
}

// Set stores the height at (x, y). It panics if the point is outside the grid.
func (g *HeightGrid) Set(x, y int, v float64) {
	g.values[g.index(x, y)] = v
}

func (g *HeightGrid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("terrain: point (%d,%d) outside %dx%d grid", x, y, g.side, g.side))
	}
	return x*g.side + y
}

// MinMax returns the lowest and highest height in the grid.
func (g *HeightGrid) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Equal reports whether both grids have the same side and bit-identical values.
func (g *HeightGrid) Equal(other *HeightGrid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.side != other.side {
		return false
	}
	for i, v := range g.values {
		if math.Float64bits(v) != math.Float64bits(other.values[i]) {
			return false
		}
	}
	return true
}
