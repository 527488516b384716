// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

// Package dataframe turns measurement query results into clean numeric
// columns. Observations with a missing value in any selected column are
// dropped before statistics or binning run, the same contract the study data
// demands everywhere: blanks never reach a fit.
package dataframe

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Frame holds the cleaned numeric columns of one measurement query.
type Frame struct {
	names   []string
	columns map[string][]float64
	rows    int
}

// Clean builds a dataframe from a records table (header row first) and drops
// every row with a missing value. Empty cells parse to NaN and mark the row
// incomplete.
func Clean(records [][]string) (*Frame, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("records table has no header row")
	}
	names := records[0]
	if len(records) == 1 {
		// No data rows; an empty frame is valid (the caller decides
		// whether that is an error for its chart).
		return emptyFrame(names), nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
	)
	if df.Error() != nil {
		return nil, fmt.Errorf("failed to load records: %w", df.Error())
	}

	// Collect row indices where every column has a value.
	raw := make(map[string][]float64, len(names))
	for _, name := range names {
		col := df.Col(name)
		if col.Err != nil {
			return nil, fmt.Errorf("failed to read column %s: %w", name, col.Err)
		}
		raw[name] = col.Float()
	}

	var keep []int
	for i := 0; i < df.Nrow(); i++ {
		complete := true
		for _, name := range names {
			if math.IsNaN(raw[name][i]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}

	f := emptyFrame(names)
	f.rows = len(keep)
	for _, name := range names {
		col := make([]float64, 0, len(keep))
		for _, i := range keep {
			col = append(col, raw[name][i])
		}
		f.columns[name] = col
	}
	return f, nil
}

func emptyFrame(names []string) *Frame {
	f := &Frame{
		names:   append([]string(nil), names...),
		columns: make(map[string][]float64, len(names)),
	}
	for _, name := range names {
		f.columns[name] = nil
	}
	return f
}

// Len returns the number of complete observations.
func (f *Frame) Len() int {
	return f.rows
}

// Names returns the column names in selection order.
func (f *Frame) Names() []string {
	return f.names
}

// Column returns the values of the named column. Returns nil for unknown
// columns.
func (f *Frame) Column(name string) []float64 {
	return f.columns[name]
}
