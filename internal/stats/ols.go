// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

// Package stats fits the ordinary least squares models behind the regression
// charts: a simple fit for the 2D trendline and a two-predictor fit for the
// 3D plane. Both delegate the numerics to gonum.
package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Fit errors surfaced to the API layer as 422s.
var (
	ErrTooFewPoints  = errors.New("not enough complete observations to fit a model")
	ErrDegenerateFit = errors.New("observations are collinear; least squares system is singular")
)

// SimpleFit is a one-predictor ordinary least squares fit: y = Intercept + Slope*x.
type SimpleFit struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	N         int
}

// SimpleOLS fits y against x by ordinary least squares.
// Requires at least two observations with distinct x values.
func SimpleOLS(x, y []float64) (*SimpleFit, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched sample lengths: %d vs %d", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, ErrTooFewPoints
	}
	if allEqual(x) {
		return nil, ErrDegenerateFit
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, intercept, slope)

	return &SimpleFit{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  r2,
		N:         len(x),
	}, nil
}

// Predict evaluates the fitted line at x.
func (f *SimpleFit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// PlaneFit is a two-predictor ordinary least squares fit:
// z = Intercept + SlopeX*x + SlopeY*y.
type PlaneFit struct {
	Intercept   float64
	SlopeX      float64
	SlopeY      float64
	RSquared    float64
	AdjRSquared float64
	N           int
}

// MultipleOLS fits z against x and y by ordinary least squares, solving the
// design system through QR decomposition. Requires at least four
// observations so the adjusted R-squared denominator (n - 3) stays positive.
func MultipleOLS(x, y, z []float64) (*PlaneFit, error) {
	n := len(x)
	if len(y) != n || len(z) != n {
		return nil, fmt.Errorf("mismatched sample lengths: %d, %d, %d", n, len(y), len(z))
	}
	if n < 4 {
		return nil, ErrTooFewPoints
	}

	// Design matrix with an intercept column.
	design := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
		design.Set(i, 1, x[i])
		design.Set(i, 2, y[i])
	}
	response := mat.NewVecDense(n, z)

	var qr mat.QR
	qr.Factorize(design)
	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateFit, err)
	}

	fit := &PlaneFit{
		Intercept: coef.AtVec(0),
		SlopeX:    coef.AtVec(1),
		SlopeY:    coef.AtVec(2),
		N:         n,
	}

	// R-squared from residuals; adjusted for the two predictors.
	meanZ := stat.Mean(z, nil)
	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		resid := z[i] - fit.Predict(x[i], y[i])
		ssRes += resid * resid
		dev := z[i] - meanZ
		ssTot += dev * dev
	}
	if ssTot == 0 {
		// Constant response: the plane is exact, R-squared is conventionally 1.
		fit.RSquared = 1
		fit.AdjRSquared = 1
		return fit, nil
	}
	fit.RSquared = 1 - ssRes/ssTot
	fit.AdjRSquared = 1 - (1-fit.RSquared)*float64(n-1)/float64(n-3)
	return fit, nil
}

// Predict evaluates the fitted plane at (x, y).
func (f *PlaneFit) Predict(x, y float64) float64 {
	return f.Intercept + f.SlopeX*x + f.SlopeY*y
}

func allEqual(xs []float64) bool {
	for _, v := range xs[1:] {
		if v != xs[0] {
			return false
		}
	}
	return true
}
