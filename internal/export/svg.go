package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/glide/internal/sim"
)

// SVGStyle sets the colours of a rendered trace.
type SVGStyle struct {
	Background colorful.Color
	Value      colorful.Color
	Target     colorful.Color
}

// DefaultSVGStyle is a dark background with a green value line and a dim
// target line.
var DefaultSVGStyle = SVGStyle{
	Background: colorful.Color{R: 0.04, G: 0.04, B: 0.04},
	Value:      colorful.Color{G: 1},
	Target:     colorful.Color{R: 0.4, G: 0.4, B: 0.4},
}

type point struct{ X, Y float64 }

// TraceToSVG renders value and target over time. It returns "" when the
// result has fewer than two samples.
func TraceToSVG(res *sim.Result, width, height int, style SVGStyle) string {
	if res == nil || len(res.Samples) < 2 {
		return ""
	}

	values := make([]point, len(res.Samples))
	targets := make([]point, len(res.Samples))
	for i, s := range res.Samples {
		t := s.Time.Seconds()
		values[i] = point{t, s.Value}
		targets[i] = point{t, s.Target}
	}

	b := bounds(append(append([]point(nil), values...), targets...))

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, style.Background.Hex())

	writePath(&sb, targets, b, width, height, style.Target.Hex(), ` stroke-dasharray="4 3"`)
	writePath(&sb, values, b, width, height, style.Value.Hex(), "")

	sb.WriteString("</svg>")
	return sb.String()
}

type box struct{ minX, maxX, minY, maxY float64 }

// bounds pads the data range by 10% on each side.
func bounds(points []point) box {
	b := box{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for _, p := range points {
		b.minX = math.Min(b.minX, p.X)
		b.maxX = math.Max(b.maxX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxY = math.Max(b.maxY, p.Y)
	}

	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.minX -= rangeX * 0.1
	b.maxX += rangeX * 0.1
	b.minY -= rangeY * 0.1
	b.maxY += rangeY * 0.1
	return b
}

func writePath(sb *strings.Builder, points []point, b box, width, height int, stroke, extra string) {
	fmt.Fprintf(sb, `<path fill="none" stroke="%s" stroke-width="1.5"%s d="M`, stroke, extra)
	for i, p := range points {
		x := (p.X - b.minX) / (b.maxX - b.minX) * float64(width)
		y := float64(height) - (p.Y-b.minY)/(b.maxY-b.minY)*float64(height)
		if i == 0 {
			fmt.Fprintf(sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString("\"/>\n")
}
