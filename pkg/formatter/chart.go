package formatter

import (
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ChartSizes are the input sizes sampled for the growth chart.
var ChartSizes = []float64{10, 50, 100, 500, 1000, 5000, 10000}

// GrowthSeries returns the scaled operation counts for complexity and for
// a linear reference at each of ChartSizes. Unrecognized notations are
// drawn as linear.
func GrowthSeries(complexity string) (current, linear []float64) {
	growth := growthFunc(complexity)
	for _, n := range ChartSizes {
		current = append(current, math.Max(1, growth(n)/100))
		linear = append(linear, n/100)
	}
	return current, linear
}

func growthFunc(complexity string) func(float64) float64 {
	switch normalizeNotation(complexity) {
	case "o(1)":
		return func(float64) float64 { return 1 }
	case "o(logn)":
		return math.Log2
	case "o(nlogn)":
		return func(n float64) float64 { return n * math.Log2(n) }
	case "o(n^2)":
		return func(n float64) float64 { return n * n }
	case "o(n^3)":
		return func(n float64) float64 { return n * n * n }
	case "o(2^n)":
		return func(n float64) float64 { return math.Pow(2, math.Min(n, 20)) }
	default:
		return func(n float64) float64 { return n }
	}
}

func normalizeNotation(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))
	return strings.NewReplacer("²", "^2", "³", "^3", "log2n", "logn", "lgn", "logn").Replace(s)
}

// ComplexityChart plots the growth curve for complexity against linear.
func ComplexityChart(complexity string) string {
	current, linear := GrowthSeries(complexity)
	return asciigraph.PlotMany([][]float64{current, linear},
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Green),
		asciigraph.Caption("ops/100 for n = 10..10K: "+complexity+" (cyan) vs O(n) (green)"),
	)
}
