package terrain

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is the surface class of a triangle, chosen from its mean elevation.
type Color uint8

// Surface classes, lowest to highest.
const (
	Water Color = iota
	Sand
	Grass
	Rock
)

// Elevation breakpoints between surface classes. They are absolute heights;
// grids are not normalized before classification.
const (
	SandLevel  = 0.3
	GrassLevel = 0.4
	RockLevel  = 0.75
)

// Colors lists every surface class in elevation order.
var Colors = []Color{Water, Sand, Grass, Rock}

// Classify returns the surface class for a height. Heights below 0 are
// Water and heights above 1 are Rock.
func Classify(height float64) Color {
	switch {
	case height < SandLevel:
		return Water
	case height < GrassLevel:
		return Sand
	case height < RockLevel:
		return Grass
	default:
		return Rock
	}
}

// String returns the lowercase class name.
func (c Color) String() string {
	switch c {
	case Water:
		return "water"
	case Sand:
		return "sand"
	case Grass:
		return "grass"
	case Rock:
		return "rock"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// RGBA returns the display color for the class.
func (c Color) RGBA() color.RGBA {
	switch c {
	case Water:
		return colornames.Blue
	case Sand:
		return colornames.Sandybrown
	case Grass:
		return colornames.Green
	default:
		return colornames.Gray
	}
}

// Float returns the display color as normalized RGBA components.
func (c Color) Float() [4]float32 {
	rgba := c.RGBA()
	return [4]float32{
		float32(rgba.R) / 255.0,
		float32(rgba.G) / 255.0,
		float32(rgba.B) / 255.0,
		float32(rgba.A) / 255.0,
	}
}
