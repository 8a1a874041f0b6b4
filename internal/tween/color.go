package tween

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSpace names the space a colour tween blends through.
type ColorSpace string

const (
	RGB ColorSpace = "rgb"
	HCL ColorSpace = "hcl"
	HSV ColorSpace = "hsv"
	Lab ColorSpace = "lab"
	Luv ColorSpace = "luv"
)

// Color blends colours through space and returns the result in RGB.
func Color(space ColorSpace) (Func[colorful.Color, colorful.Color], error) {
	switch space {
	case RGB:
		return func(from, to colorful.Color, p float64) colorful.Color { return from.BlendRgb(to, p) }, nil
	case HCL:
		return func(from, to colorful.Color, p float64) colorful.Color { return from.BlendHcl(to, p) }, nil
	case HSV:
		return func(from, to colorful.Color, p float64) colorful.Color { return from.BlendHsv(to, p) }, nil
	case Lab:
		return func(from, to colorful.Color, p float64) colorful.Color { return from.BlendLab(to, p) }, nil
	case Luv:
		return func(from, to colorful.Color, p float64) colorful.Color { return from.BlendLuv(to, p) }, nil
	}
	return nil, fmt.Errorf("%w: color space %q", ErrUnknownTween, space)
}

// ColorDiff subtracts colours channel by channel. The result is not a valid
// colour on its own; it only carries the deficit between two blend points.
func ColorDiff(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R - b.R, G: a.G - b.G, B: a.B - b.B}
}
