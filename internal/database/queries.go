// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ljmcgrath/pygoscelis/internal/dataset"
	"github.com/ljmcgrath/pygoscelis/internal/metrics"
)

// FetchMeasurements selects the given measurement columns for every row
// matching the filter. The result is a records table, header row first, ready
// for the dataframe layer: NULL cells are empty strings so that incomplete
// observations can be dropped downstream, mirroring the study data's blanks.
//
// Column names come from the dataset catalog only; filter values are bound
// as parameters.
func (db *DB) FetchMeasurements(ctx context.Context, filter MeasurementFilter, vars ...dataset.Variable) ([][]string, error) {
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	// A chart may plot the same variable on two axes; select each column once.
	columns := make([]string, 0, len(vars))
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if !seen[v.Column()] {
			seen[v.Column()] = true
			columns = append(columns, v.Column())
		}
	}

	baseQuery := fmt.Sprintf("SELECT %s FROM palmerpenguins WHERE 1=1", strings.Join(columns, ", "))
	conditions, args := filter.buildConditions()
	query := baseQuery + conditions

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.DBQueryDuration.WithLabelValues("fetch_measurements").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBQueryErrors.WithLabelValues("fetch_measurements").Inc()
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer closeQuietly(rows)

	records := [][]string{columns}
	scanned := make([]sql.NullFloat64, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range scanned {
		dest[i] = &scanned[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan measurement row: %w", err)
		}
		record := make([]string, len(columns))
		for i, v := range scanned {
			if v.Valid {
				record[i] = strconv.FormatFloat(v.Float64, 'g', -1, 64)
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("measurement row iteration failed: %w", err)
	}

	return records, nil
}

// SpeciesCount is the number of observations recorded for one species.
type SpeciesCount struct {
	Species string `json:"species"`
	Count   int64  `json:"count"`
}

// VariableCompleteness reports how many observations carry a value for one
// measurement variable.
type VariableCompleteness struct {
	Variable string `json:"variable"`
	Label    string `json:"label"`
	Present  int64  `json:"present"`
}

// DatasetSummary describes the loaded dataset for the index page.
type DatasetSummary struct {
	TotalRows int64                  `json:"total_rows"`
	Species   []SpeciesCount         `json:"species"`
	Males     int64                  `json:"males"`
	Females   int64                  `json:"females"`
	Variables []VariableCompleteness `json:"variables"`
}

// GetDatasetSummary computes row counts per species and sex and per-variable
// completeness for the loaded dataset.
func (db *DB) GetDatasetSummary(ctx context.Context) (*DatasetSummary, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	summary := &DatasetSummary{}

	start := time.Now()
	defer func() {
		metrics.DBQueryDuration.WithLabelValues("dataset_summary").Observe(time.Since(start).Seconds())
	}()

	err := db.conn.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE sex = 'MALE'),
		       COUNT(*) FILTER (WHERE sex = 'FEMALE')
		FROM palmerpenguins`).Scan(&summary.TotalRows, &summary.Males, &summary.Females)
	if err != nil {
		metrics.DBQueryErrors.WithLabelValues("dataset_summary").Inc()
		return nil, fmt.Errorf("failed to count observations: %w", err)
	}

	for _, sp := range dataset.SpeciesValues {
		var count int64
		err := db.conn.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM palmerpenguins WHERE species LIKE ?", sp.Name()+"%").Scan(&count)
		if err != nil {
			metrics.DBQueryErrors.WithLabelValues("dataset_summary").Inc()
			return nil, fmt.Errorf("failed to count %s observations: %w", sp.Name(), err)
		}
		summary.Species = append(summary.Species, SpeciesCount{Species: sp.Name(), Count: count})
	}

	for _, v := range dataset.Variables {
		var present int64
		query := fmt.Sprintf("SELECT COUNT(%s) FROM palmerpenguins", v.Column())
		if err := db.conn.QueryRowContext(ctx, query).Scan(&present); err != nil {
			metrics.DBQueryErrors.WithLabelValues("dataset_summary").Inc()
			return nil, fmt.Errorf("failed to count %s values: %w", v.Column(), err)
		}
		summary.Variables = append(summary.Variables, VariableCompleteness{
			Variable: v.Column(),
			Label:    v.Label(),
			Present:  present,
		})
	}

	return summary, nil
}
