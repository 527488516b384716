// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package figure

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ljmcgrath/pygoscelis/internal/database"
	"github.com/ljmcgrath/pygoscelis/internal/dataset"
	"github.com/ljmcgrath/pygoscelis/internal/stats"
)

// fakeStore serves canned measurement records and captures the filter it
// was queried with.
type fakeStore struct {
	records [][]string
	err     error

	gotFilter database.MeasurementFilter
	gotVars   []dataset.Variable
}

func (f *fakeStore) FetchMeasurements(_ context.Context, filter database.MeasurementFilter, vars ...dataset.Variable) ([][]string, error) {
	f.gotFilter = filter
	f.gotVars = vars
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func TestServiceHistogram(t *testing.T) {
	store := &fakeStore{records: [][]string{
		{"body_mass_g"},
		{"3750"},
		{"3800"},
		{""}, // incomplete observation, dropped before binning
		{"4200"},
	}}
	svc := NewService(store)

	fig, err := svc.Histogram(context.Background(), dataset.Adelie, dataset.Male, dataset.BodyMass)
	require.NoError(t, err)

	require.Equal(t, dataset.Adelie, store.gotFilter.Species)
	require.Equal(t, dataset.Male, store.gotFilter.Sex)
	require.Equal(t, []dataset.Variable{dataset.BodyMass}, store.gotVars)

	trace := fig.Data[0].(*HistogramTrace)
	require.Equal(t, []float64{3750, 3800, 4200}, trace.X)
}

func TestServiceRegression(t *testing.T) {
	store := &fakeStore{records: [][]string{
		{"body_mass_g", "flipper_length_mm"},
		{"1", "4"},
		{"2", "6"},
		{"3", "8"},
	}}
	svc := NewService(store)

	fig, err := svc.Regression(context.Background(), dataset.Gentoo, dataset.BodyMass, dataset.FlipperLength)
	require.NoError(t, err)
	require.Len(t, fig.Data, 2)
	require.Equal(t, dataset.Gentoo, store.gotFilter.Species)
	require.Equal(t, dataset.BothSexes, store.gotFilter.Sex)
}

func TestServiceRegressionTooFewPoints(t *testing.T) {
	store := &fakeStore{records: [][]string{
		{"body_mass_g", "flipper_length_mm"},
		{"1", "4"},
	}}
	svc := NewService(store)

	_, err := svc.Regression(context.Background(), dataset.Adelie, dataset.BodyMass, dataset.FlipperLength)
	require.ErrorIs(t, err, stats.ErrTooFewPoints)
}

func TestServiceRegressionSameVariableBothAxes(t *testing.T) {
	// explanatory == response is allowed: it degenerates to a slope-1 line.
	store := &fakeStore{records: [][]string{
		{"body_mass_g"},
		{"3750"},
		{"4200"},
		{"5000"},
	}}
	svc := NewService(store)

	fig, err := svc.Regression(context.Background(), dataset.Adelie, dataset.BodyMass, dataset.BodyMass)
	require.NoError(t, err)

	trend := fig.Data[1].(*ScatterTrace)
	require.InDelta(t, trend.X[0], trend.Y[0], 1e-9)
	require.InDelta(t, trend.X[2], trend.Y[2], 1e-9)
}

func TestServiceSurface(t *testing.T) {
	store := &fakeStore{records: [][]string{
		{"body_mass_g", "culmen_length_mm", "culmen_depth_mm"},
		{"0", "0", "1"},
		{"1", "0", "3"},
		{"0", "1", "4"},
		{"1", "1", "6"},
		{"2", "1", "8"},
	}}
	svc := NewService(store)

	fig, err := svc.Surface(context.Background(), dataset.Chinstrap, dataset.BodyMass, dataset.CulmenLength, dataset.CulmenDepth)
	require.NoError(t, err)
	require.Len(t, fig.Data, 2)
	require.IsType(t, &SurfaceTrace{}, fig.Data[1])
}

func TestServiceSurfaceIdenticalExplanatory(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.Surface(context.Background(), dataset.Adelie, dataset.BodyMass, dataset.BodyMass, dataset.CulmenDepth)
	require.ErrorIs(t, err, ErrIdenticalExplanatory)
}

func TestServicePropagatesStoreError(t *testing.T) {
	boom := errors.New("connection lost")
	svc := NewService(&fakeStore{err: boom})

	_, err := svc.Histogram(context.Background(), dataset.AllSpecies, dataset.BothSexes, dataset.BodyMass)
	require.ErrorIs(t, err, boom)
}
