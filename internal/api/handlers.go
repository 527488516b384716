// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ljmcgrath/pygoscelis/internal/database"
	"github.com/ljmcgrath/pygoscelis/internal/dataframe"
	"github.com/ljmcgrath/pygoscelis/internal/dataset"
	"github.com/ljmcgrath/pygoscelis/internal/figure"
	"github.com/ljmcgrath/pygoscelis/internal/logging"
	"github.com/ljmcgrath/pygoscelis/internal/render"
	"github.com/ljmcgrath/pygoscelis/internal/stats"
	"github.com/ljmcgrath/pygoscelis/web"
)

// Store is the database surface the handlers need.
type Store interface {
	FetchMeasurements(ctx context.Context, filter database.MeasurementFilter, vars ...dataset.Variable) ([][]string, error)
	GetDatasetSummary(ctx context.Context) (*database.DatasetSummary, error)
	Ping(ctx context.Context) error
}

// FigureBuilder builds the Plotly figures served by the chart endpoints.
type FigureBuilder interface {
	Histogram(ctx context.Context, species dataset.Species, sex dataset.Sex, variable dataset.Variable) (*figure.Figure, error)
	Regression(ctx context.Context, species dataset.Species, explanatory, response dataset.Variable) (*figure.Figure, error)
	Surface(ctx context.Context, species dataset.Species, xVar, yVar, response dataset.Variable) (*figure.Figure, error)
}

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	store     Store
	figures   FigureBuilder
	startTime time.Time
}

// NewHandler creates the handler set.
func NewHandler(store Store, figures FigureBuilder) *Handler {
	return &Handler{
		store:     store,
		figures:   figures,
		startTime: time.Now(),
	}
}

// ================================
// Figure endpoints
// ================================

// FigureHistogram serves GET /api/v1/figures/histogram.
func (h *Handler) FigureHistogram(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	species, sex, variable, apiErr := histogramRequest(r)
	if apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	fig, err := h.figures.Histogram(r.Context(), species, sex, variable)
	if err != nil {
		h.figureError(rw, r, err)
		return
	}
	rw.Success(fig)
}

// FigureRegression serves GET /api/v1/figures/regression.
func (h *Handler) FigureRegression(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	species, explanatory, response, apiErr := regressionRequest(r)
	if apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	fig, err := h.figures.Regression(r.Context(), species, explanatory, response)
	if err != nil {
		h.figureError(rw, r, err)
		return
	}
	rw.Success(fig)
}

// FigureSurface serves GET /api/v1/figures/surface.
func (h *Handler) FigureSurface(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	species, x, y, response, apiErr := surfaceRequest(r)
	if apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	fig, err := h.figures.Surface(r.Context(), species, x, y, response)
	if err != nil {
		h.figureError(rw, r, err)
		return
	}
	rw.Success(fig)
}

// figureError maps pipeline errors to API errors. Fits that cannot be
// computed from the selected data are the client's 422, not a server fault.
func (h *Handler) figureError(rw *ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, figure.ErrIdenticalExplanatory):
		rw.UnprocessableEntity("The two explanatory variables must differ")
	case errors.Is(err, stats.ErrTooFewPoints):
		rw.UnprocessableEntity("Too few complete observations for this selection")
	case errors.Is(err, stats.ErrDegenerateFit):
		rw.UnprocessableEntity("The explanatory values are constant; no line can be fitted")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
		logging.Ctx(r.Context()).Debug().Msg("Figure request canceled")
	default:
		rw.DatabaseError(err)
	}
}

// ================================
// Dataset endpoints
// ================================

// DatasetSummary serves GET /api/v1/dataset/summary.
func (h *Handler) DatasetSummary(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	summary, err := h.store.GetDatasetSummary(r.Context())
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.Success(summary)
}

// ================================
// PNG export endpoints
// ================================

// ExportHistogramPNG serves GET /api/v1/export/histogram.png.
func (h *Handler) ExportHistogramPNG(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	species, sex, variable, apiErr := histogramRequest(r)
	if apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	frame, err := h.cleanMeasurements(r.Context(), database.MeasurementFilter{Species: species, Sex: sex}, variable)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	png, err := render.Histogram(variable, species, sex, frame.Column(variable.Column()))
	if err != nil {
		if errors.Is(err, render.ErrNoObservations) {
			rw.UnprocessableEntity("No complete observations for this selection")
			return
		}
		rw.InternalError("Failed to render the histogram")
		return
	}
	writePNG(w, "histogram.png", png)
}

// ExportRegressionPNG serves GET /api/v1/export/regression.png.
func (h *Handler) ExportRegressionPNG(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	species, explanatory, response, apiErr := regressionRequest(r)
	if apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	frame, err := h.cleanMeasurements(r.Context(), database.MeasurementFilter{Species: species}, explanatory, response)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	x := frame.Column(explanatory.Column())
	y := frame.Column(response.Column())
	fit, err := stats.SimpleOLS(x, y)
	if err != nil {
		h.figureError(rw, r, err)
		return
	}

	png, err := render.RegressionScatter(species, explanatory, response, x, y, fit)
	if err != nil {
		rw.InternalError("Failed to render the scatterplot")
		return
	}
	writePNG(w, "regression.png", png)
}

// cleanMeasurements queries the store and drops incomplete observations.
func (h *Handler) cleanMeasurements(ctx context.Context, filter database.MeasurementFilter, vars ...dataset.Variable) (*dataframe.Frame, error) {
	records, err := h.store.FetchMeasurements(ctx, filter, vars...)
	if err != nil {
		return nil, err
	}
	return dataframe.Clean(records)
}

func writePNG(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write PNG response")
	}
}

// ================================
// Health endpoints
// ================================

// healthStatus is the health endpoint payload.
type healthStatus struct {
	Status    string  `json:"status"`
	UptimeSec float64 `json:"uptime_seconds"`
	Database  string  `json:"database"`
}

// Health serves GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	status := healthStatus{
		Status:    "ok",
		UptimeSec: time.Since(h.startTime).Seconds(),
		Database:  "ok",
	}
	if err := h.store.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Health check database ping failed")
		status.Status = "degraded"
		status.Database = "unreachable"
		rw.writeJSON(http.StatusServiceUnavailable, APIResponse{Success: false, Data: status, Error: &APIError{
			Code:    ErrCodeServiceUnavailable,
			Message: "Database is unreachable",
		}})
		return
	}
	rw.Success(status)
}

// HealthLive serves GET /api/v1/health/live. The process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]string{"status": "alive"})
}

// HealthReady serves GET /api/v1/health/ready. Ready means the database
// answers queries.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if err := h.store.Ping(r.Context()); err != nil {
		rw.ServiceUnavailable("Database is not ready")
		return
	}
	rw.Success(map[string]string{"status": "ready"})
}

// ================================
// Page handlers
// ================================

func (h *Handler) page(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := web.RenderPage(w, name, title); err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Str("page", name).Msg("Failed to render page")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}
}

// Index serves GET /.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.page("index", "Home")(w, r)
}

// Glossary serves GET /glossary/.
func (h *Handler) Glossary(w http.ResponseWriter, r *http.Request) {
	h.page("glossary", "Glossary")(w, r)
}

// Histograms serves GET /histograms/.
func (h *Handler) Histograms(w http.ResponseWriter, r *http.Request) {
	h.page("histograms", "Histograms")(w, r)
}

// LinearRegression serves GET /linear_regression/.
func (h *Handler) LinearRegression(w http.ResponseWriter, r *http.Request) {
	h.page("linear_regression", "Linear Regression")(w, r)
}

// MultipleRegression serves GET /multiple_regression/.
func (h *Handler) MultipleRegression(w http.ResponseWriter, r *http.Request) {
	h.page("multiple_regression", "Multiple Regression")(w, r)
}
