package landscape

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/Faultbox/fractal-landscape/internal/config"
	"github.com/Faultbox/fractal-landscape/pkg/math"
)

// DirectionalLight is a light with parallel rays.
type DirectionalLight struct {
	Color     color.RGBA
	Direction math.Vec3 // unit vector the light travels along
}

// AmbientLight lights every face equally.
type AmbientLight struct {
	Color color.RGBA
}

// Lights is the fixed lighting handed to the renderer with every terrain.
type Lights struct {
	Directional DirectionalLight
	Ambient     AmbientLight
}

// LightsFromConfig resolves color names and normalizes the light direction.
func LightsFromConfig(cfg config.LightingConfig) (Lights, error) {
	dirColor, ok := colornames.Map[cfg.DirectionalColor]
	if !ok {
		return Lights{}, fmt.Errorf("unknown directional light color %q", cfg.DirectionalColor)
	}
	ambColor, ok := colornames.Map[cfg.AmbientColor]
	if !ok {
		return Lights{}, fmt.Errorf("unknown ambient light color %q", cfg.AmbientColor)
	}

	dir := math.Vec3{X: cfg.Direction[0], Y: cfg.Direction[1], Z: cfg.Direction[2]}.Normalize()
	if dir == (math.Vec3{}) {
		return Lights{}, fmt.Errorf("light direction must be non-zero")
	}

	return Lights{
		Directional: DirectionalLight{Color: dirColor, Direction: dir},
		Ambient:     AmbientLight{Color: ambColor},
	}, nil
}

// Shade returns the color a renderer would give a face with the given base
// color and unit normal: ambient plus Lambertian diffuse, per channel.
func (l Lights) Shade(base color.RGBA, normal math.Vec3) color.RGBA {
	diffuse := normal.Dot(l.Directional.Direction.Scale(-1))
	if diffuse < 0 {
		diffuse = 0
	}

	channel := func(b, amb, dir uint8) uint8 {
		v := float64(b) / 255 * (float64(amb)/255 + float64(dir)/255*diffuse)
		if v > 1 {
			v = 1
		}
		return uint8(v*255 + 0.5)
	}

	return color.RGBA{
		R: channel(base.R, l.Ambient.Color.R, l.Directional.Color.R),
		G: channel(base.G, l.Ambient.Color.G, l.Directional.Color.G),
		B: channel(base.B, l.Ambient.Color.B, l.Directional.Color.B),
		A: base.A,
	}
}
