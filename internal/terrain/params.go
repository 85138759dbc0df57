package terrain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Defaults used by the landscape viewer at start-up.
const (
	DefaultDepth         = 5
	DefaultRandomness    = 0.8
	DefaultFootprintSize = 50.0
	DefaultReferenceSize = 1.0
)

// Input errors.
var (
	ErrDepthNotInteger      = errors.New("depth is not an integer")
	ErrRandomnessNotNumeric = errors.New("randomness is not a number")
	ErrInvalidBaseHeight    = errors.New("base height must be finite")
)

// Parameters describes one generation request.
type Parameters struct {
	Depth         int     `yaml:"depth"`
	Randomness    float64 `yaml:"randomness"`
	FootprintSize float64 `yaml:"footprint_size"`
	ReferenceSize float64 `yaml:"reference_size"`
	BaseHeight    float64 `yaml:"base_height"`
	// MaxDepth caps Depth below the package MaxDepth. Zero means no extra cap.
	MaxDepth int `yaml:"max_depth"`
}

// DefaultParameters returns the start-up terrain parameters.
func DefaultParameters() Parameters {
	return Parameters{
		Depth:         DefaultDepth,
		Randomness:    DefaultRandomness,
		FootprintSize: DefaultFootprintSize,
		ReferenceSize: DefaultReferenceSize,
	}
}

// Side returns the grid side length these parameters produce.
func (p Parameters) Side() int {
	return SideForDepth(p.Depth)
}

// Validate checks every field before any allocation happens.
func (p Parameters) Validate() error {
	if p.Depth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, p.Depth)
	}
	limit := MaxDepth
	if p.MaxDepth > 0 && p.MaxDepth < limit {
		limit = p.MaxDepth
	}
	if p.Depth > limit {
		return fmt.Errorf("%w: got %d, max %d", ErrDepthTooLarge, p.Depth, limit)
	}
	if !isFinite(p.Randomness) || p.Randomness < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRandomness, p.Randomness)
	}
	if !isFinite(p.FootprintSize) || p.FootprintSize <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidFootprint, p.FootprintSize)
	}
	if !isFinite(p.ReferenceSize) || p.ReferenceSize == 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidReferenceSize, p.ReferenceSize)
	}
	if !isFinite(p.BaseHeight) {
		return fmt.Errorf("%w: got %v", ErrInvalidBaseHeight, p.BaseHeight)
	}
	return nil
}

// ParseDepth parses a textual recursion depth.
func ParseDepth(text string) (int, error) {
	depth, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDepthNotInteger, text)
	}
	return depth, nil
}

// ParseDecimal parses a decimal number written with either '.' or ','
// as the decimal separator.
func ParseDecimal(text string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	return strconv.ParseFloat(normalized, 64)
}

// ParseRandomness parses a textual randomness value with ParseDecimal.
func ParseRandomness(text string) (float64, error) {
	randomness, err := ParseDecimal(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrRandomnessNotNumeric, text)
	}
	return randomness, nil
}

// ParseParameters overrides depth and randomness in base with parsed text
// values and validates the result.
func ParseParameters(base Parameters, depthText, randomnessText string) (Parameters, error) {
	depth, err := ParseDepth(depthText)
	if err != nil {
		return Parameters{}, err
	}
	randomness, err := ParseRandomness(randomnessText)
	if err != nil {
		return Parameters{}, err
	}

	p := base
	p.Depth = depth
	p.Randomness = randomness
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}
