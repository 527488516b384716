// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package figure

import (
	"fmt"
	"math"

	"github.com/ljmcgrath/pygoscelis/internal/dataset"
)

// Histogram builds a probability-normalized histogram of one measurement
// variable, optionally filtered by species and sex. The bin count follows the
// square-root rule on the cleaned sample size, and the bar colour is keyed to
// the active filter: species first, then sex, then the default.
func Histogram(variable dataset.Variable, species dataset.Species, sex dataset.Sex, values []float64) *Figure {
	bins := int(math.Sqrt(float64(len(values))))
	if bins < 1 {
		bins = 1
	}

	trace := &HistogramTrace{
		Type:     "histogram",
		X:        values,
		HistNorm: "probability",
		NBinsX:   bins,
		Marker:   &Marker{Color: dataset.HistogramColour(species, sex)},
	}

	title := fmt.Sprintf("What is the Distribution of %s amongst%s %s Penguins?",
		variable.Label(), sex.DisplayName(), species.DisplayName())

	return &Figure{
		Data: []interface{}{trace},
		Layout: Layout{
			Title:           title,
			XAxis:           &Axis{Title: variable.Label()},
			YAxis:           &Axis{Title: "Probability"},
			PlotBackground:  plotBackground,
			PaperBackground: paperBackground,
		},
	}
}
