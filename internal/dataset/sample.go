// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
)

// sampleCSV is a 60-row excerpt of the palmerpenguins study data, bundled so
// the dashboard works out of the box. Point database.dataset_path at the full
// CSV from the Palmer Station LTER to load the complete study.
//
//go:embed sample_penguins.csv
var sampleCSV []byte

// Row is one observation of the palmerpenguins table. Measurement pointers
// are nil where the study recorded no value.
type Row struct {
	Species       string
	Island        string
	Sex           string
	CulmenLength  *float64
	CulmenDepth   *float64
	FlipperLength *float64
	BodyMass      *float64
	Delta15N      *float64
	Delta13C      *float64
}

// SampleRows parses the embedded sample CSV.
func SampleRows() ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(sampleCSV))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded sample: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("embedded sample has no data rows")
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != 9 {
			return nil, fmt.Errorf("embedded sample row %d has %d fields, want 9", i+2, len(rec))
		}
		row := Row{Species: rec[0], Island: rec[1], Sex: rec[2]}
		var parseErr error
		parse := func(s string) *float64 {
			if s == "" || parseErr != nil {
				return nil
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				parseErr = fmt.Errorf("embedded sample row %d: %w", i+2, err)
				return nil
			}
			return &v
		}
		row.CulmenLength = parse(rec[3])
		row.CulmenDepth = parse(rec[4])
		row.FlipperLength = parse(rec[5])
		row.BodyMass = parse(rec[6])
		row.Delta15N = parse(rec[7])
		row.Delta13C = parse(rec[8])
		if parseErr != nil {
			return nil, parseErr
		}
		rows = append(rows, row)
	}
	return rows, nil
}
