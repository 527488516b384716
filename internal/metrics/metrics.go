// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

// Package metrics provides Prometheus instrumentation for the dashboard:
// DuckDB query performance, HTTP request latency and throughput, and figure
// build counts per chart type.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation"},
	)

	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	// Figure metrics
	FigureBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "figure_builds_total",
			Help: "Total number of chart figures built",
		},
		[]string{"chart"},
	)

	FigureBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "figure_build_duration_seconds",
			Help:    "End-to-end figure build duration (query, dataframe, fit, traces)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"chart"},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordFigureBuild records one figure build for a chart type.
func RecordFigureBuild(chart string, duration time.Duration) {
	FigureBuildsTotal.WithLabelValues(chart).Inc()
	FigureBuildDuration.WithLabelValues(chart).Observe(duration.Seconds())
}
