// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package figure

import (
	"fmt"

	"github.com/ljmcgrath/pygoscelis/internal/dataset"
	"github.com/ljmcgrath/pygoscelis/internal/stats"
)

// meshPoints is the resolution of the fitted plane along each axis.
const meshPoints = 50

// RegressionSurface builds a 3D scatterplot of one species' observations with
// the fitted least squares plane drawn as a surface over a meshPoints²
// grid spanning the observed range of both explanatory variables.
func RegressionSurface(species dataset.Species, xVar, yVar, response dataset.Variable, x, y, z []float64, fit *stats.PlaneFit) *Figure {
	xLabel := xVar.Label()
	yLabel := yVar.Label()
	zLabel := response.Label()

	// Chinstrap markers are black, so their outline flips to white.
	outline := "black"
	if species == dataset.Chinstrap {
		outline = "white"
	}

	points := &Scatter3DTrace{
		Type: "scatter3d",
		Mode: "markers",
		X:    x,
		Y:    y,
		Z:    z,
		Marker: &Marker{
			Color: species.Colour(),
			Size:  4,
			Line:  &MarkerLine{Color: outline, Width: 2},
		},
		HoverTemplate: fmt.Sprintf("%s=%%{x}<br>%s=%%{y}<br>%s=%%{z}<extra></extra>",
			xLabel, yLabel, zLabel),
	}

	xMin, xMax := minMax(x)
	yMin, yMax := minMax(y)
	meshX := linspace(xMin, xMax, meshPoints)
	meshY := linspace(yMin, yMax, meshPoints)
	meshZ := make([][]float64, meshPoints)
	for i, yv := range meshY {
		row := make([]float64, meshPoints)
		for j, xv := range meshX {
			row[j] = fit.Predict(xv, yv)
		}
		meshZ[i] = row
	}

	plane := &SurfaceTrace{
		Type:       "surface",
		X:          meshX,
		Y:          meshY,
		Z:          meshZ,
		Colorscale: "spectral",
		Colorbar:   &Colorbar{Title: "Predicted " + zLabel},
		HoverTemplate: fmt.Sprintf(
			"<b>OLS plane</b><br>%s = %.8f * %s + %.8f * %s + %.3f<br>Adjusted R²=%.6f<br><br>%s=%%{x:.4f}<br>%s=%%{y:.4f}<br>%s=%%{z:.4f} <b>(trend)</b><extra></extra>",
			zLabel, fit.SlopeX, xLabel, fit.SlopeY, yLabel, fit.Intercept,
			fit.AdjRSquared, xLabel, yLabel, zLabel),
	}

	title := fmt.Sprintf("Can %s %s and %s Help Predict %s?",
		species.DisplayName(), xLabel, yLabel, zLabel)

	return &Figure{
		Data: []interface{}{points, plane},
		Layout: Layout{
			Title: title,
			Scene: &Scene{
				XAxis: &Axis{Title: xLabel},
				YAxis: &Axis{Title: yLabel},
				ZAxis: &Axis{Title: zLabel},
			},
		},
	}
}

func minMax(xs []float64) (float64, float64) {
	min, max := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
