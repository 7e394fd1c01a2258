// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package models

import (
	"encoding/json"
	"maps"
)

// RateTable maps a currency code to its multiplier relative to a base
// currency.
type RateTable map[string]float64

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	return maps.Clone(t)
}

// LatestRates is the fallback body of the latest-rates endpoint.
type LatestRates struct {
	Base  string    `json:"base"`
	Rates RateTable `json:"rates"`
}

// Timeseries is the fallback body of the timeseries endpoint: date
// (YYYY-MM-DD) to currency to rate.
type Timeseries struct {
	Base  string               `json:"base"`
	Rates map[string]RateTable `json:"rates"`
}

// TimeseriesRequest holds the query of a timeseries request.
type TimeseriesRequest struct {
	StartDate string
	EndDate   string
	Base      string
	Symbols   string
}

// RatesResult is what the rate aggregator returns: either a provider body
// passed through verbatim, or a synthesized fallback value.
type RatesResult struct {
	// Source names the provider that answered, or "fallback".
	Source string
	// Raw holds the provider's body when a provider answered.
	Raw json.RawMessage
	// Fallback holds the synthesized value when every provider failed.
	Fallback any
}

// IsFallback reports whether the result was synthesized locally.
func (r RatesResult) IsFallback() bool {
	return r.Raw == nil
}
