// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"net/http"
	"net/url"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/metrics"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/utils"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

func (h *Handler) staticRates(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.RatesService.Static(), http.StatusOK)
}

func (h *Handler) latestRates(w http.ResponseWriter, r *http.Request) {
	result := h.services.RatesService.Latest(r.Context(), r.URL.Query().Get("base"))
	h.writeRates(w, r, "latest", result)
}

func (h *Handler) timeseries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result, err := h.services.RatesService.Timeseries(r.Context(), models.TimeseriesRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Base:      query.Get("base"),
		Symbols:   query.Get("symbols"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeRates(w, r, "timeseries", result)
}

// writeRates writes a provider body verbatim, or the synthesized fallback.
func (h *Handler) writeRates(w http.ResponseWriter, r *http.Request, kind string, result models.RatesResult) {
	metrics.RecordRatesServed(kind, sourceLabel(result.Source))
	logger.FromRequest(r).Debug().Str("kind", kind).Str("source", result.Source).Msg("rates served")

	var err error
	if result.IsFallback() {
		_, err = utils.WriteJSON(w, result.Fallback, http.StatusOK)
	} else {
		_, err = utils.WriteRawJSON(w, result.Raw, http.StatusOK)
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing rates")
	}
}

// sourceLabel reduces a provider URL template to its host.
func sourceLabel(source string) string {
	u, err := url.Parse(source)
	if err != nil || u.Host == "" {
		return source
	}
	return u.Host
}
