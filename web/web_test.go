// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRenderPageAll(t *testing.T) {
	for _, name := range pageNames {
		var buf bytes.Buffer
		if err := RenderPage(&buf, name, "Test"); err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		html := buf.String()
		if !strings.Contains(html, "<nav>") {
			t.Errorf("%s is missing the layout", name)
		}
		if !strings.Contains(html, "Test | Pygoscelis") {
			t.Errorf("%s is missing the title", name)
		}
	}
}

func TestRenderPageUnknown(t *testing.T) {
	if err := RenderPage(&bytes.Buffer{}, "no-such-page", "X"); err == nil {
		t.Fatal("unknown page should error")
	}
}

func TestChartPagesCarryRadioControls(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, "histograms", "Histograms"); err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	for _, want := range []string{
		`name="species"`, `name="sex"`, `name="variable"`,
		`value="adelie"`, `value="male"`, `value="flipper_length_mm"`,
		"/api/v1/figures/histogram",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("histograms page missing %s", want)
		}
	}
}

func TestRegressionPagesRequireOneSpecies(t *testing.T) {
	for _, name := range []string{"linear_regression", "multiple_regression"} {
		var buf bytes.Buffer
		if err := RenderPage(&buf, name, "Regression"); err != nil {
			t.Fatal(err)
		}
		html := buf.String()

		if strings.Contains(html, "All Species") {
			t.Errorf("%s page offers an all-species option", name)
		}
		if !strings.Contains(html, `value="adelie" checked`) {
			t.Errorf("%s page does not default to Adelie", name)
		}
	}
}

func TestRegressionPageDefaultVariables(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, "linear_regression", "Linear Regression"); err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	for _, want := range []string{
		`name="explanatory" value="body_mass_g" checked`,
		`name="response" value="flipper_length_mm" checked`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("linear_regression page missing %s", want)
		}
	}
}

func TestSurfacePageControls(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, "multiple_regression", "Multiple Regression"); err != nil {
		t.Fatal(err)
	}
	html := buf.String()
	for _, want := range []string{
		`name="x" value="body_mass_g" checked`,
		`name="y" value="culmen_length_mm" checked`,
		`name="response" value="culmen_depth_mm" checked`,
		"/api/v1/figures/surface",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("multiple_regression page missing %s", want)
		}
	}
}

func TestStaticHandler(t *testing.T) {
	handler := StaticHandler()

	for _, path := range []string{"/static/style.css", "/static/app.js"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s returned %d", path, rec.Code)
		}
		if rec.Body.Len() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}
