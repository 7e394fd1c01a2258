// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

// Package metrics holds the Prometheus collectors of the easy-travel API
// and small helpers to record into them.
package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RatesServedTotal counts rate responses by endpoint kind (latest,
	// timeseries) and the source that answered (a provider URL template or
	// "fallback").
	RatesServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rates_served_total",
			Help: "Total number of exchange-rate responses by source",
		},
		[]string{"kind", "source"},
	)

	// RateLimitedTotal counts requests rejected by a request budget.
	RateLimitedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by a request budget",
		},
		[]string{"scope"},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, RatesServedTotal, RateLimitedTotal)
	})
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
// E.g. /api/trip/123 -> /api/trip/{id}.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// RecordRatesServed increments the rates counter for kind and source.
func RecordRatesServed(kind, source string) {
	RatesServedTotal.WithLabelValues(kind, source).Inc()
}

// RecordRateLimited increments the rejection counter of a budget scope
// ("api" or "auth").
func RecordRateLimited(scope string) {
	RateLimitedTotal.WithLabelValues(scope).Inc()
}
