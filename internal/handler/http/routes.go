// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withMetrics)
	router.Use(securityHeaders)
	router.Use(h.cors().Handler)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(maxBytes(h.maxBodyBytes))

	router.Get("/healthz", h.healthz)
	router.Handle(metricsPath, promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Use(h.apiLimiter.middleware)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(h.authLimiter.middleware)
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		r.Get("/rates", h.staticRates)
		r.Get("/latest", h.latestRates)
		r.Get("/timeseries", h.timeseries)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/trips", h.listTrips)
			r.Post("/trip", h.createTrip)
			r.Get("/trip/{id}", h.getTrip)
			r.Put("/trip/{id}", h.updateTrip)
			r.Delete("/trip/{id}", h.deleteTrip)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, r, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return router
}

func (h *Handler) cors() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   h.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           86400,
	})
}
