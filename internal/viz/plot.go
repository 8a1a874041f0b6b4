package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/glide/internal/easing"
	"github.com/san-kum/glide/internal/sim"
)

type PlotSize struct {
	Width  int
	Height int
}

func (s PlotSize) orDefault() PlotSize {
	if s.Width <= 0 {
		s.Width = 80
	}
	if s.Height <= 0 {
		s.Height = 12
	}
	return s
}

// SampleEasing evaluates fn at n+1 evenly spaced points on [0,1].
func SampleEasing(fn easing.Func, n int) []float64 {
	if n < 1 {
		n = 1
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = fn(float64(i) / float64(n))
	}
	return out
}

// PlotEasing draws fn over [0,1].
func PlotEasing(name string, fn easing.Func, size PlotSize) string {
	size = size.orDefault()
	return asciigraph.Plot(SampleEasing(fn, size.Width*2),
		asciigraph.Height(size.Height),
		asciigraph.Width(size.Width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Green),
		asciigraph.Caption(name))
}

// PlotTrace draws the value and the target of a run.
func PlotTrace(res *sim.Result, size PlotSize) string {
	if res == nil || len(res.Samples) == 0 {
		return ""
	}
	size = size.orDefault()

	targets := make([]float64, len(res.Samples))
	for i, s := range res.Samples {
		targets[i] = s.Target
	}

	caption := fmt.Sprintf("%s  %d frames, %d registrations", res.Scenario, res.Frames, res.Registrations)
	return asciigraph.PlotMany([][]float64{res.Values(), targets},
		asciigraph.Height(size.Height),
		asciigraph.Width(size.Width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.DimGray),
		asciigraph.SeriesLegends("value", "target"),
		asciigraph.Caption(caption))
}
