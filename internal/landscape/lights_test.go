package landscape

import (
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/Faultbox/fractal-landscape/internal/config"
	vmath "github.com/Faultbox/fractal-landscape/pkg/math"
)

func TestLightsFromConfig(t *testing.T) {
	lights, err := LightsFromConfig(config.Default().Lighting)
	if err != nil {
		t.Fatalf("LightsFromConfig failed: %v", err)
	}

	if lights.Directional.Color != colornames.White {
		t.Errorf("directional color = %v, want white", lights.Directional.Color)
	}
	if lights.Ambient.Color != colornames.Gray {
		t.Errorf("ambient color = %v, want gray", lights.Ambient.Color)
	}

	d := lights.Directional.Direction
	want := -1 / math.Sqrt(3)
	if math.Abs(d.X-want) > 1e-12 || math.Abs(d.Y-want) > 1e-12 || math.Abs(d.Z-want) > 1e-12 {
		t.Errorf("direction = %v, want normalized (-1,-1,-1)", d)
	}
}

func TestLightsFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.LightingConfig)
	}{
		{"directional color", func(c *config.LightingConfig) { c.DirectionalColor = "ultraviolet" }},
		{"ambient color", func(c *config.LightingConfig) { c.AmbientColor = "" }},
		{"zero direction", func(c *config.LightingConfig) { c.Direction = [3]float64{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default().Lighting
			tt.modify(&cfg)
			if _, err := LightsFromConfig(cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLightsShade(t *testing.T) {
	lights := Lights{
		Directional: DirectionalLight{Color: colornames.White, Direction: vmath.Vec3{Z: -1}},
		Ambient:     AmbientLight{Color: color.RGBA{}},
	}
	base := colornames.Green

	// Facing the light: full diffuse.
	if got := lights.Shade(base, vmath.Vec3{Z: 1}); got != base {
		t.Errorf("Shade(facing) = %v, want %v", got, base)
	}

	// Facing away with no ambient: black.
	want := color.RGBA{A: base.A}
	if got := lights.Shade(base, vmath.Vec3{Z: -1}); got != want {
		t.Errorf("Shade(away) = %v, want %v", got, want)
	}
}
