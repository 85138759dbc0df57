package terrain

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/fractal-landscape/internal/logger"
)

// MaxDepth is the deepest refinement Generate accepts. A depth-13 grid is
// 8193x8193 heights (about 512 MB).
const MaxDepth = 13

// Generation errors.
var (
	ErrInvalidDepth         = errors.New("depth must be at least 1")
	ErrDepthTooLarge        = errors.New("depth exceeds maximum")
	ErrInvalidRandomness    = errors.New("randomness must be a finite value >= 0")
	ErrInvalidReferenceSize = errors.New("reference size must be finite and non-zero")
	ErrNilSource            = errors.New("random source is nil")
)

// SideForDepth returns the grid side 2^depth + 1.
func SideForDepth(depth int) int {
	return 1<<depth + 1
}

// Generate builds a Diamond-Square height grid of side 2^depth+1.
//
// Corners take the first four draws from src. Every later point is the
// average of its already-set neighbors plus a displacement of
// (2u-1) * randomness * step / referenceSize, and randomness halves after
// each refinement level. A fixed src sequence yields a bit-identical grid.
func Generate(src Source, depth int, randomness, referenceSize float64) (*HeightGrid, error) {
	return GenerateContext(context.Background(), src, depth, randomness, referenceSize)
}

// GenerateContext is Generate with a cancellation check between refinement levels.
func GenerateContext(ctx context.Context, src Source, depth int, randomness, referenceSize float64) (*HeightGrid, error) {
	if err := checkGenerateArgs(src, depth, randomness, referenceSize); err != nil {
		return nil, err
	}

	n := SideForDepth(depth)
	grid, err := NewHeightGrid(n)
	if err != nil {
		return nil, err
	}

	grid.Set(0, 0, src.Float64())
	grid.Set(0, n-1, src.Float64())
	grid.Set(n-1, 0, src.Float64())
	grid.Set(n-1, n-1, src.Float64())

	for step := n - 1; step > 1; step /= 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Debug("refinement level",
			zap.Int("step", step),
			zap.Float64("randomness", randomness))

		diamondPass(grid, src, step, randomness, referenceSize)
		squarePass(grid, src, step, randomness, referenceSize)

		randomness /= 2
	}

	return grid, nil
}

func checkGenerateArgs(src Source, depth int, randomness, referenceSize float64) error {
	if src == nil {
		return ErrNilSource
	}
	if depth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	if depth > MaxDepth {
		return fmt.Errorf("%w: got %d, max %d", ErrDepthTooLarge, depth, MaxDepth)
	}
	if !isFinite(randomness) || randomness < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRandomness, randomness)
	}
	if !isFinite(referenceSize) || referenceSize == 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidReferenceSize, referenceSize)
	}
	return nil
}

// diamondPass sets the center of every lattice square to the mean of its corners.
func diamondPass(g *HeightGrid, src Source, step int, randomness, referenceSize float64) {
	n := g.Side()
	half := step / 2
	for x := 0; x < n-1; x += step {
		for y := 0; y < n-1; y += step {
			avg := (g.At(x, y) +
				g.At(x+step, y) +
				g.At(x, y+step) +
				g.At(x+step, y+step)) / 4.0

			g.Set(x+half, y+half, avg+displacement(src, step, randomness, referenceSize))
		}
	}
}

// squarePass sets every lattice edge midpoint to the mean of its in-bounds
// axis neighbors. Edge points on the grid border have only 3 neighbors.
func squarePass(g *HeightGrid, src Source, step int, randomness, referenceSize float64) {
	n := g.Side()
	half := step / 2
	for x := 0; x < n; x += half {
		for y := (x + half) % step; y < n; y += step {
			var sum float64
			count := 0

			if x >= half {
				sum += g.At(x-half, y)
				count++
			}
			if x+half < n {
				sum += g.At(x+half, y)
				count++
			}
			if y >= half {
				sum += g.At(x, y-half)
				count++
			}
			if y+half < n {
				sum += g.At(x, y+half)
				count++
			}

			if count == 0 {
				panic(fmt.Sprintf("terrain: square pass found no neighbors for (%d,%d) at step %d", x, y, step))
			}

			g.Set(x, y, sum/float64(count)+displacement(src, step, randomness, referenceSize))
		}
	}
}

func displacement(src Source, step int, randomness, referenceSize float64) float64 {
	return (src.Float64()*2 - 1) * randomness * float64(step) / referenceSize
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
