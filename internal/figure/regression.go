// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package figure

import (
	"fmt"
	"sort"

	"github.com/ljmcgrath/pygoscelis/internal/dataset"
	"github.com/ljmcgrath/pygoscelis/internal/stats"
)

// RegressionScatter builds a scatterplot of one species' observations with an
// ordinary least squares trendline. The trendline hover text reports the
// fitted equation and R², to the same precision the dashboard has always
// shown (slope 8 dp, intercept 3 dp, R² 6 dp).
func RegressionScatter(species dataset.Species, explanatory, response dataset.Variable, x, y []float64, fit *stats.SimpleFit) *Figure {
	xLabel := explanatory.Label()
	yLabel := response.Label()

	points := &ScatterTrace{
		Type:   "scatter",
		Mode:   "markers",
		X:      x,
		Y:      y,
		Marker: &Marker{Color: species.Colour()},
		HoverTemplate: fmt.Sprintf("%s=%%{x}<br>%s=%%{y}<extra></extra>",
			xLabel, yLabel),
	}

	// Evaluate the fitted line across the sorted x values, so the trendline
	// spans exactly the observed range.
	sortedX := append([]float64(nil), x...)
	sort.Float64s(sortedX)
	lineY := make([]float64, len(sortedX))
	for i, xv := range sortedX {
		lineY[i] = fit.Predict(xv)
	}

	trend := &ScatterTrace{
		Type: "scatter",
		Mode: "lines",
		X:    sortedX,
		Y:    lineY,
		HoverTemplate: fmt.Sprintf(
			"<b>OLS trendline</b><br>%s = %.8f * %s + %.3f<br>R²=%.6f<br><br>%s=%%{x}<br>%s=%%{y:.4f}<b>(trend)</b><extra></extra>",
			yLabel, fit.Slope, xLabel, fit.Intercept, fit.RSquared, xLabel, yLabel),
	}

	title := fmt.Sprintf("What is the Correlation between %s %s and %s?",
		species.DisplayName(), xLabel, yLabel)

	return &Figure{
		Data: []interface{}{points, trend},
		Layout: Layout{
			Title:           title,
			XAxis:           &Axis{Title: xLabel},
			YAxis:           &Axis{Title: yLabel},
			PlotBackground:  plotBackground,
			PaperBackground: paperBackground,
		},
	}
}
