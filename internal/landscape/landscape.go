// Package landscape keeps the terrain currently on display and regenerates
// it from user-supplied parameters.
package landscape

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/fractal-landscape/internal/config"
	"github.com/Faultbox/fractal-landscape/internal/logger"
	"github.com/Faultbox/fractal-landscape/internal/terrain"
)

// Terrain is one generated landscape. It must not be modified once published.
type Terrain struct {
	ID        uuid.UUID
	Params    terrain.Parameters
	Seed      uint64
	Side      int
	MinHeight float64
	MaxHeight float64
	Mesh      *terrain.Mesh
	Lights    Lights
	CreatedAt time.Time
}

// Triangles returns every triangle to draw, perimeter walls included.
func (t *Terrain) Triangles() []terrain.Triangle {
	return t.Mesh.All()
}

// InputError reports parameters that were rejected before generation.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return "invalid parameters, check your input: " + e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// SourceFactory creates the random source for one generation.
type SourceFactory func(seed uint64) terrain.Source

// Option configures a Landscape.
type Option func(*Landscape)

// WithSourceFactory replaces the PCG source used for generation.
func WithSourceFactory(f SourceFactory) Option {
	return func(l *Landscape) {
		l.newSource = f
	}
}

// WithSeedFunc replaces the wall-clock seed used when no fixed seed is configured.
func WithSeedFunc(f func() uint64) Option {
	return func(l *Landscape) {
		l.nextSeed = f
	}
}

// Landscape owns the terrain on display. Current is safe to call while
// another goroutine regenerates.
type Landscape struct {
	mu      sync.RWMutex
	current *Terrain

	base      terrain.Parameters
	seed      uint64
	lights    Lights
	newSource SourceFactory
	nextSeed  func() uint64
}

// New creates a Landscape from the terrain and lighting config.
// No terrain is generated until Start, Generate or Regenerate is called.
func New(cfg *config.Config, opts ...Option) (*Landscape, error) {
	lights, err := LightsFromConfig(cfg.Lighting)
	if err != nil {
		return nil, err
	}

	l := &Landscape{
		base:      cfg.Terrain.Parameters(),
		seed:      cfg.Terrain.Seed,
		lights:    lights,
		newSource: terrain.NewSource,
		nextSeed:  terrain.SeedFromTime,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Current returns the terrain on display, or nil before the first generation.
func (l *Landscape) Current() *Terrain {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Start generates the initial terrain from the configured parameters.
func (l *Landscape) Start(ctx context.Context) (*Terrain, error) {
	return l.Generate(ctx, l.base)
}

// Regenerate parses textual depth and randomness values and generates a new
// terrain. Randomness accepts '.' or ',' as the decimal separator. On any
// input error the current terrain is left untouched.
func (l *Landscape) Regenerate(ctx context.Context, depthText, randomnessText string) (*Terrain, error) {
	p, err := terrain.ParseParameters(l.base, depthText, randomnessText)
	if err != nil {
		logger.Warn("rejected terrain parameters",
			zap.String("depth", depthText),
			zap.String("randomness", randomnessText),
			zap.Error(err))
		return nil, &InputError{Err: err}
	}
	return l.Generate(ctx, p)
}

// Generate builds a terrain from p and puts it on display.
func (l *Landscape) Generate(ctx context.Context, p terrain.Parameters) (*Terrain, error) {
	if err := p.Validate(); err != nil {
		return nil, &InputError{Err: err}
	}

	seed := l.seed
	if seed == 0 {
		seed = l.nextSeed()
	}

	id := uuid.New()
	log := logger.With(zap.String("id", id.String()))
	start := time.Now()

	grid, err := terrain.GenerateContext(ctx, l.newSource(seed), p.Depth, p.Randomness, p.ReferenceSize)
	if err != nil {
		return nil, fmt.Errorf("generating heights: %w", err)
	}

	mesh, err := terrain.BuildMeshWithBase(grid, p.FootprintSize, p.BaseHeight)
	if err != nil {
		return nil, fmt.Errorf("building mesh: %w", err)
	}

	lo, hi := grid.MinMax()
	t := &Terrain{
		ID:        id,
		Params:    p,
		Seed:      seed,
		Side:      grid.Side(),
		MinHeight: lo,
		MaxHeight: hi,
		Mesh:      mesh,
		Lights:    l.lights,
		CreatedAt: start,
	}

	l.mu.Lock()
	l.current = t
	l.mu.Unlock()

	log.Info("terrain generated",
		zap.Int("depth", p.Depth),
		zap.Float64("randomness", p.Randomness),
		zap.Uint64("seed", seed),
		zap.Int("triangles", mesh.Len()),
		zap.Duration("elapsed", time.Since(start)))

	return t, nil
}
