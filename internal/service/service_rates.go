// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package service

import (
	"context"
	"encoding/json"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/adapter"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/config"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/utils"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/validators"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// DefaultBase is the base currency used when a request names none.
const DefaultBase = "USD"

const dateLayout = "2006-01-02"

type ratesService struct {
	provider  adapter.RateProvider
	validator validators.Validator

	latestProviders     []string
	timeseriesProviders []string
	providerTimeout     time.Duration

	// table is copied on construction and never mutated.
	table models.RateTable

	logger *logger.Logger
}

// NewRatesService builds the rate aggregator from cfg. The fallback table
// is copied, so later changes to cfg do not affect the service.
func NewRatesService(provider adapter.RateProvider, validator validators.Validator, cfg config.Rates, logger *logger.Logger) RatesService {
	return &ratesService{
		provider:            provider,
		validator:           validator,
		latestProviders:     slices.Clone(cfg.LatestProviders),
		timeseriesProviders: slices.Clone(cfg.TimeseriesProviders),
		providerTimeout:     cfg.ProviderTimeout,
		table:               models.RateTable(cfg.Fallback).Clone(),
		logger:              logger,
	}
}

func (r *ratesService) Static() models.RateTable {
	return r.table.Clone()
}

// Latest tries the latest-rate providers in order. base defaults to USD
// and is upper-cased.
func (r *ratesService) Latest(ctx context.Context, base string) models.RatesResult {
	base = normalizeCurrency(base, DefaultBase)

	attempts := r.attempts(r.latestProviders, map[string]string{"base": base})
	outcome := utils.FirstSuccess(ctx, r.providerTimeout, attempts, func() json.RawMessage { return nil })
	r.logFailures(ctx, "*ratesService.Latest", outcome.Failures)

	if outcome.Source == utils.FallbackSource {
		return models.RatesResult{
			Source:   utils.FallbackSource,
			Fallback: models.LatestRates{Base: base, Rates: r.table.Clone()},
		}
	}
	return models.RatesResult{Source: outcome.Source, Raw: outcome.Value}
}

// Timeseries validates req, then tries the timeseries providers in order.
// When all fail it synthesizes one entry per calendar day from start to
// end inclusive, where every symbol maps to table[symbol] / table[base].
// An unknown base counts as 1 and an unknown symbol as the base rate, so
// those series are flat at 1.
func (r *ratesService) Timeseries(ctx context.Context, req models.TimeseriesRequest) (models.RatesResult, error) {
	req.StartDate = strings.TrimSpace(req.StartDate)
	req.EndDate = strings.TrimSpace(req.EndDate)
	if err := r.validator.Validate(ctx, req); err != nil {
		return models.RatesResult{}, err
	}

	req.Base = normalizeCurrency(req.Base, DefaultBase)
	req.Symbols = strings.ToUpper(strings.TrimSpace(req.Symbols))

	attempts := r.attempts(r.timeseriesProviders, map[string]string{
		"base":       req.Base,
		"symbols":    req.Symbols,
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
	})
	outcome := utils.FirstSuccess(ctx, r.providerTimeout, attempts, func() json.RawMessage { return nil })
	r.logFailures(ctx, "*ratesService.Timeseries", outcome.Failures)

	if outcome.Source == utils.FallbackSource {
		return models.RatesResult{
			Source:   utils.FallbackSource,
			Fallback: r.flatSeries(req),
		}, nil
	}
	return models.RatesResult{Source: outcome.Source, Raw: outcome.Value}, nil
}

func (r *ratesService) attempts(templates []string, values map[string]string) []utils.Attempt[json.RawMessage] {
	attempts := make([]utils.Attempt[json.RawMessage], 0, len(templates))
	for _, tmpl := range templates {
		target := expandURLTemplate(tmpl, values)
		attempts = append(attempts, utils.Attempt[json.RawMessage]{
			Name: target,
			Run: func(ctx context.Context) (json.RawMessage, error) {
				return r.provider.FetchRates(ctx, target)
			},
		})
	}
	return attempts
}

func (r *ratesService) logFailures(ctx context.Context, funcName string, failures []utils.AttemptError) {
	log := logger.FromContext(ctx)
	for _, f := range failures {
		log.Warn().Err(f.Err).Str("func", funcName).Str("provider", f.Name).Msg("rate provider failed")
	}
}

func (r *ratesService) flatSeries(req models.TimeseriesRequest) models.Timeseries {
	series := models.Timeseries{Base: req.Base, Rates: map[string]models.RateTable{}}

	start, err1 := time.Parse(dateLayout, req.StartDate)
	end, err2 := time.Parse(dateLayout, req.EndDate)
	if err1 != nil || err2 != nil {
		return series
	}

	baseRate, ok := r.table[req.Base]
	if !ok || baseRate == 0 {
		baseRate = 1
	}

	day := models.RateTable{}
	for _, symbol := range r.symbols(req.Symbols) {
		target, ok := r.table[symbol]
		if !ok {
			target = baseRate
		}
		day[symbol] = target / baseRate
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		series.Rates[d.Format(dateLayout)] = day.Clone()
	}
	return series
}

// symbols splits a comma list; an empty list means every currency of the
// table, in sorted order.
func (r *ratesService) symbols(list string) []string {
	var out []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		for currency := range r.table {
			out = append(out, currency)
		}
		slices.Sort(out)
	}
	return out
}

func normalizeCurrency(code, def string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return def
	}
	return code
}

// expandURLTemplate replaces {name} placeholders with URL-escaped values.
func expandURLTemplate(tmpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for name, value := range values {
		pairs = append(pairs, "{"+name+"}", escapeComponent(value))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// escapeComponent query-escapes s with spaces as %20, so the result is
// valid in a path segment and in a query alike.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
