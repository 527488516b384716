// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

// Package figure builds Plotly-compatible figure specifications for the three
// chart types of the dashboard: histograms, linear regression scatterplots,
// and multiple regression 3D scatterplots with a fitted plane.
//
// A Figure marshals to the {"data": [...], "layout": {...}} document that the
// page JavaScript hands straight to Plotly.react. Only the trace and layout
// attributes the dashboard actually uses are modelled.
package figure

// Figure is a Plotly figure: a list of traces plus a layout.
type Figure struct {
	Data   []interface{} `json:"data"`
	Layout Layout        `json:"layout"`
}

// Layout holds the figure-level presentation attributes.
type Layout struct {
	Title           string `json:"title,omitempty"`
	XAxis           *Axis  `json:"xaxis,omitempty"`
	YAxis           *Axis  `json:"yaxis,omitempty"`
	Scene           *Scene `json:"scene,omitempty"`
	PlotBackground  string `json:"plot_bgcolor,omitempty"`
	PaperBackground string `json:"paper_bgcolor,omitempty"`
}

// Axis titles one axis.
type Axis struct {
	Title string `json:"title,omitempty"`
}

// Scene titles the three axes of a 3D figure.
type Scene struct {
	XAxis *Axis `json:"xaxis,omitempty"`
	YAxis *Axis `json:"yaxis,omitempty"`
	ZAxis *Axis `json:"zaxis,omitempty"`
}

// Marker styles the points of a trace.
type Marker struct {
	Color string      `json:"color,omitempty"`
	Size  int         `json:"size,omitempty"`
	Line  *MarkerLine `json:"line,omitempty"`
}

// MarkerLine styles the outline of markers.
type MarkerLine struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// HistogramTrace is a Plotly histogram trace.
type HistogramTrace struct {
	Type     string    `json:"type"`
	X        []float64 `json:"x"`
	HistNorm string    `json:"histnorm,omitempty"`
	NBinsX   int       `json:"nbinsx,omitempty"`
	Marker   *Marker   `json:"marker,omitempty"`
}

// ScatterTrace is a Plotly 2D scatter trace, used both for the observation
// markers and for the OLS trendline.
type ScatterTrace struct {
	Type          string    `json:"type"`
	Mode          string    `json:"mode"`
	X             []float64 `json:"x"`
	Y             []float64 `json:"y"`
	Marker        *Marker   `json:"marker,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	ShowLegend    *bool     `json:"showlegend,omitempty"`
}

// Scatter3DTrace is a Plotly 3D scatter trace.
type Scatter3DTrace struct {
	Type          string    `json:"type"`
	Mode          string    `json:"mode"`
	X             []float64 `json:"x"`
	Y             []float64 `json:"y"`
	Z             []float64 `json:"z"`
	Marker        *Marker   `json:"marker,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
}

// SurfaceTrace is a Plotly surface trace carrying the fitted plane. X and Y
// are the mesh axes; Z[i][j] is the plane evaluated at (X[j], Y[i]).
type SurfaceTrace struct {
	Type          string      `json:"type"`
	X             []float64   `json:"x"`
	Y             []float64   `json:"y"`
	Z             [][]float64 `json:"z"`
	Colorscale    string      `json:"colorscale,omitempty"`
	Colorbar      *Colorbar   `json:"colorbar,omitempty"`
	HoverTemplate string      `json:"hovertemplate,omitempty"`
}

// Colorbar titles the surface colour scale.
type Colorbar struct {
	Title string `json:"title,omitempty"`
}

// Background colours applied to the 2D figures, matching the dashboard theme.
const (
	plotBackground  = "rgba(255, 255, 255, 0.2)"
	paperBackground = "rgba(0, 0, 0, 0)"
)

// linspace returns n evenly spaced values across [min, max].
func linspace(min, max float64, n int) []float64 {
	if n < 2 {
		return []float64{min}
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max
	return out
}
