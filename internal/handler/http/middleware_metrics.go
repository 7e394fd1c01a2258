// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/metrics"
)

const metricsPath = "/metrics"

// withMetrics records the duration and count of every request except
// scrapes of the metrics endpoint itself. The chi route pattern is used as
// the path label when a route matched.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		if r.URL.Path == metricsPath {
			return
		}

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		if path == "" {
			path = "/"
		}

		metrics.RecordRequest(r.Method, path, mw.Status(), time.Since(start).Seconds())
	})
}
