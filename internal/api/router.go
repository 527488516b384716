// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ljmcgrath/pygoscelis/internal/config"
	"github.com/ljmcgrath/pygoscelis/internal/middleware"
	"github.com/ljmcgrath/pygoscelis/web"
)

// Router wires handlers and middleware into the HTTP routing tree.
type Router struct {
	handler *Handler
	cfg     *config.APIConfig
}

// NewRouter creates a router over the given handler set.
func NewRouter(handler *Handler, cfg *config.APIConfig) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	if len(router.cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: router.cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         86400,
		}))
	}

	// Health endpoints stay outside the rate limiter so that monitoring
	// never competes with dashboard traffic.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Data and figure endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.rateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/figures/histogram", router.handler.FigureHistogram)
		r.Get("/figures/regression", router.handler.FigureRegression)
		r.Get("/figures/surface", router.handler.FigureSurface)

		r.Get("/dataset/summary", router.handler.DatasetSummary)

		r.Get("/export/histogram.png", router.handler.ExportHistogramPNG)
		r.Get("/export/regression.png", router.handler.ExportRegressionPNG)
	})

	// Prometheus scrape endpoint.
	r.Handle("/metrics", promhttp.Handler())

	// Dashboard pages and static assets.
	r.Get("/", router.handler.Index)
	r.Get("/glossary/", router.handler.Glossary)
	r.Get("/histograms/", router.handler.Histograms)
	r.Get("/linear_regression/", router.handler.LinearRegression)
	r.Get("/multiple_regression/", router.handler.MultipleRegression)
	r.Handle("/static/*", web.StaticHandler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	return r
}

// rateLimit builds the per-client rate limiter for the API endpoints.
func (router *Router) rateLimit() func(http.Handler) http.Handler {
	if router.cfg.RateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		router.cfg.RateLimit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			WriteError(w, r, http.StatusTooManyRequests, ErrCodeTooManyRequests, "Rate limit exceeded")
		}),
	)
}
