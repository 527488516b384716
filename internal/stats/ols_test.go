// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package stats

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSimpleOLSExactLine(t *testing.T) {
	// y = 3 + 2x, noise-free.
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{5, 7, 9, 11, 13}

	fit, err := SimpleOLS(x, y)
	if err != nil {
		t.Fatalf("SimpleOLS() error: %v", err)
	}
	if !almostEqual(fit.Slope, 2, 1e-10) {
		t.Errorf("slope = %v, want 2", fit.Slope)
	}
	if !almostEqual(fit.Intercept, 3, 1e-10) {
		t.Errorf("intercept = %v, want 3", fit.Intercept)
	}
	if !almostEqual(fit.RSquared, 1, 1e-10) {
		t.Errorf("R² = %v, want 1", fit.RSquared)
	}
	if fit.N != 5 {
		t.Errorf("N = %d, want 5", fit.N)
	}
}

func TestSimpleOLSNoisy(t *testing.T) {
	// Hand-checked fit: x = 0..3, y below gives slope 1.4, intercept 0.9.
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 2, 4, 5}

	fit, err := SimpleOLS(x, y)
	if err != nil {
		t.Fatalf("SimpleOLS() error: %v", err)
	}
	if !almostEqual(fit.Slope, 1.4, 1e-10) {
		t.Errorf("slope = %v, want 1.4", fit.Slope)
	}
	if !almostEqual(fit.Intercept, 0.9, 1e-10) {
		t.Errorf("intercept = %v, want 0.9", fit.Intercept)
	}
	if fit.RSquared <= 0.9 || fit.RSquared >= 1 {
		t.Errorf("R² = %v, want in (0.9, 1)", fit.RSquared)
	}
}

func TestSimpleOLSErrors(t *testing.T) {
	if _, err := SimpleOLS([]float64{1}, []float64{2}); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("single point: err = %v, want ErrTooFewPoints", err)
	}
	if _, err := SimpleOLS([]float64{2, 2, 2}, []float64{1, 2, 3}); !errors.Is(err, ErrDegenerateFit) {
		t.Errorf("constant x: err = %v, want ErrDegenerateFit", err)
	}
	if _, err := SimpleOLS([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("mismatched lengths should error")
	}
}

func TestSimpleFitPredict(t *testing.T) {
	fit := &SimpleFit{Slope: 2, Intercept: 3}
	if got := fit.Predict(10); got != 23 {
		t.Errorf("Predict(10) = %v, want 23", got)
	}
}

func TestMultipleOLSExactPlane(t *testing.T) {
	// z = 1 + 2x + 3y, noise-free, non-collinear points.
	x := []float64{0, 1, 0, 1, 2, 3}
	y := []float64{0, 0, 1, 1, 1, 2}
	z := make([]float64, len(x))
	for i := range x {
		z[i] = 1 + 2*x[i] + 3*y[i]
	}

	fit, err := MultipleOLS(x, y, z)
	if err != nil {
		t.Fatalf("MultipleOLS() error: %v", err)
	}
	if !almostEqual(fit.Intercept, 1, 1e-8) {
		t.Errorf("intercept = %v, want 1", fit.Intercept)
	}
	if !almostEqual(fit.SlopeX, 2, 1e-8) {
		t.Errorf("x slope = %v, want 2", fit.SlopeX)
	}
	if !almostEqual(fit.SlopeY, 3, 1e-8) {
		t.Errorf("y slope = %v, want 3", fit.SlopeY)
	}
	if !almostEqual(fit.RSquared, 1, 1e-8) || !almostEqual(fit.AdjRSquared, 1, 1e-8) {
		t.Errorf("R² = %v, adjusted = %v, want 1", fit.RSquared, fit.AdjRSquared)
	}
}

func TestMultipleOLSAdjustedBelowRSquared(t *testing.T) {
	// Noisy plane: adjusted R² must be strictly below R² when the fit is
	// imperfect.
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	y := []float64{1, 0, 2, 1, 3, 2, 4, 3}
	z := []float64{1.2, 2.8, 5.1, 6.9, 9.2, 10.8, 13.1, 14.9}

	fit, err := MultipleOLS(x, y, z)
	if err != nil {
		t.Fatalf("MultipleOLS() error: %v", err)
	}
	if fit.RSquared <= 0 || fit.RSquared > 1 {
		t.Fatalf("R² = %v out of range", fit.RSquared)
	}
	if fit.AdjRSquared >= fit.RSquared {
		t.Errorf("adjusted R² = %v should be below R² = %v for an imperfect fit",
			fit.AdjRSquared, fit.RSquared)
	}
}

func TestMultipleOLSErrors(t *testing.T) {
	three := []float64{1, 2, 3}
	if _, err := MultipleOLS(three, three, three); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("n=3: err = %v, want ErrTooFewPoints", err)
	}
	if _, err := MultipleOLS([]float64{1, 2}, []float64{1}, []float64{1, 2}); err == nil {
		t.Error("mismatched lengths should error")
	}
}

func TestPlaneFitPredict(t *testing.T) {
	fit := &PlaneFit{Intercept: 1, SlopeX: 2, SlopeY: 3}
	if got := fit.Predict(2, 3); got != 14 {
		t.Errorf("Predict(2, 3) = %v, want 14", got)
	}
}
