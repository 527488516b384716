// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package figure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ljmcgrath/pygoscelis/internal/database"
	"github.com/ljmcgrath/pygoscelis/internal/dataframe"
	"github.com/ljmcgrath/pygoscelis/internal/dataset"
	"github.com/ljmcgrath/pygoscelis/internal/metrics"
	"github.com/ljmcgrath/pygoscelis/internal/stats"
)

// ErrIdenticalExplanatory is returned when both explanatory variables of the
// multiple regression are the same column; the plane fit would be singular.
var ErrIdenticalExplanatory = errors.New("the two explanatory variables must differ")

// MeasurementStore is the slice of the database the figure service needs.
type MeasurementStore interface {
	FetchMeasurements(ctx context.Context, filter database.MeasurementFilter, vars ...dataset.Variable) ([][]string, error)
}

// Service builds chart figures by running the full pipeline on every call:
// query, clean, fit, traces. Nothing is cached; each interaction reflects the
// database as it is now.
type Service struct {
	store MeasurementStore
}

// NewService creates a figure service over a measurement store.
func NewService(store MeasurementStore) *Service {
	return &Service{store: store}
}

// Histogram builds the histogram figure for one variable under a
// species/sex filter.
func (s *Service) Histogram(ctx context.Context, species dataset.Species, sex dataset.Sex, variable dataset.Variable) (*Figure, error) {
	start := time.Now()
	defer func() { metrics.RecordFigureBuild("histogram", time.Since(start)) }()

	frame, err := s.fetch(ctx, database.MeasurementFilter{Species: species, Sex: sex}, variable)
	if err != nil {
		return nil, err
	}
	return Histogram(variable, species, sex, frame.Column(variable.Column())), nil
}

// Regression builds the linear regression scatterplot for one species.
func (s *Service) Regression(ctx context.Context, species dataset.Species, explanatory, response dataset.Variable) (*Figure, error) {
	start := time.Now()
	defer func() { metrics.RecordFigureBuild("regression", time.Since(start)) }()

	frame, err := s.fetch(ctx, database.MeasurementFilter{Species: species}, explanatory, response)
	if err != nil {
		return nil, err
	}

	x := frame.Column(explanatory.Column())
	y := frame.Column(response.Column())
	fit, err := stats.SimpleOLS(x, y)
	if err != nil {
		return nil, fmt.Errorf("regression fit for %s vs %s: %w", explanatory, response, err)
	}
	return RegressionScatter(species, explanatory, response, x, y, fit), nil
}

// Surface builds the multiple regression 3D scatterplot for one species.
func (s *Service) Surface(ctx context.Context, species dataset.Species, xVar, yVar, response dataset.Variable) (*Figure, error) {
	start := time.Now()
	defer func() { metrics.RecordFigureBuild("surface", time.Since(start)) }()

	if xVar == yVar {
		return nil, ErrIdenticalExplanatory
	}

	frame, err := s.fetch(ctx, database.MeasurementFilter{Species: species}, xVar, yVar, response)
	if err != nil {
		return nil, err
	}

	x := frame.Column(xVar.Column())
	y := frame.Column(yVar.Column())
	z := frame.Column(response.Column())
	fit, err := stats.MultipleOLS(x, y, z)
	if err != nil {
		return nil, fmt.Errorf("plane fit for %s, %s vs %s: %w", xVar, yVar, response, err)
	}
	return RegressionSurface(species, xVar, yVar, response, x, y, z, fit), nil
}

// fetch runs the measurement query and drops incomplete observations.
func (s *Service) fetch(ctx context.Context, filter database.MeasurementFilter, vars ...dataset.Variable) (*dataframe.Frame, error) {
	records, err := s.store.FetchMeasurements(ctx, filter, vars...)
	if err != nil {
		return nil, err
	}
	frame, err := dataframe.Clean(records)
	if err != nil {
		return nil, fmt.Errorf("failed to clean measurements: %w", err)
	}
	return frame, nil
}
