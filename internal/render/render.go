// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

// Package render produces static PNG exports of the histogram and linear
// regression charts. The interactive pages use Plotly figures; these renders
// exist for downloading and embedding outside the dashboard.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ljmcgrath/pygoscelis/internal/dataset"
	"github.com/ljmcgrath/pygoscelis/internal/stats"
)

// ErrNoObservations is returned when there is nothing to draw.
var ErrNoObservations = errors.New("no observations to render")

const (
	chartWidth  = 900
	chartHeight = 560
)

// colours maps the catalog's CSS colour names onto drawing colours.
var colours = map[string]drawing.Color{
	"deeppink":       {R: 255, G: 20, B: 147, A: 255},
	"black":          {R: 0, G: 0, B: 0, A: 255},
	"darkorange":     {R: 255, G: 140, B: 0, A: 255},
	"green":          {R: 0, G: 128, B: 0, A: 255},
	"yellow":         {R: 255, G: 215, B: 0, A: 255},
	"cornflowerblue": {R: 100, G: 149, B: 237, A: 255},
}

func colourOf(name string) drawing.Color {
	if c, ok := colours[name]; ok {
		return c
	}
	return colours["cornflowerblue"]
}

// Histogram renders the distribution of one variable as a PNG bar chart,
// binned by the square-root rule like the interactive figure.
func Histogram(variable dataset.Variable, species dataset.Species, sex dataset.Sex, values []float64) ([]byte, error) {
	if len(values) == 0 {
		return nil, ErrNoObservations
	}

	nBins := int(math.Sqrt(float64(len(values))))
	if nBins < 1 {
		nBins = 1
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	width := (max - min) / float64(nBins)

	counts := make([]int, nBins)
	for _, v := range values {
		idx := nBins - 1
		if width > 0 {
			idx = int((v - min) / width)
			if idx >= nBins {
				idx = nBins - 1
			}
		}
		counts[idx]++
	}

	fill := colourOf(dataset.HistogramColour(species, sex))
	bars := make([]chart.Value, nBins)
	for i, count := range counts {
		bars[i] = chart.Value{
			Value: float64(count) / float64(len(values)),
			Label: fmt.Sprintf("%.0f", min+(float64(i)+0.5)*width),
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	bc := chart.BarChart{
		Title:      fmt.Sprintf("Distribution of %s amongst%s %s Penguins", variable.Label(), sex.DisplayName(), species.DisplayName()),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   (chartWidth - 120) / nBins,
		YAxis:      chart.YAxis{Name: "Probability"},
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render histogram: %w", err)
	}
	return buf.Bytes(), nil
}

// RegressionScatter renders the observations and the fitted OLS trendline as
// a PNG scatterplot.
func RegressionScatter(species dataset.Species, explanatory, response dataset.Variable, x, y []float64, fit *stats.SimpleFit) ([]byte, error) {
	if len(x) == 0 {
		return nil, ErrNoObservations
	}

	marker := colourOf(species.Colour())
	if species == dataset.AllSpecies {
		marker = colourOf(dataset.DefaultColour)
	}

	sortedX := append([]float64(nil), x...)
	sort.Float64s(sortedX)
	trendY := make([]float64, len(sortedX))
	for i, xv := range sortedX {
		trendY[i] = fit.Predict(xv)
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("Correlation between %s %s and %s", species.DisplayName(), explanatory.Label(), response.Label()),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      chartWidth,
		Height:     chartHeight,
		XAxis:      chart.XAxis{Name: explanatory.Label()},
		YAxis:      chart.YAxis{Name: response.Label()},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Observations",
				XValues: x,
				YValues: y,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    marker,
				},
			},
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("OLS trendline (R²=%.4f)", fit.RSquared),
				XValues: sortedX,
				YValues: trendY,
				Style: chart.Style{
					StrokeWidth: 2,
					StrokeColor: drawing.Color{R: 70, G: 70, B: 70, A: 255},
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render scatterplot: %w", err)
	}
	return buf.Bytes(), nil
}
