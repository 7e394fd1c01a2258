// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/utils"
)

const rateProviderUserAgent = "easy-travel-rates/1.0"

type httpRateProvider struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRateProvider constructs a [RateProvider] over resty. Deadlines come
// from the context of each call.
func NewHTTPRateProvider(logger *logger.Logger) RateProvider {
	return &httpRateProvider{
		client: utils.NewHTTPClient(utils.WithUserAgent(rateProviderUserAgent)),
		logger: logger,
	}
}

// FetchRates implements [RateProvider]. The status code is not inspected:
// a body is accepted exactly when it is a JSON object whose "rates" member
// is an object.
func (p *httpRateProvider) FetchRates(ctx context.Context, url string) (json.RawMessage, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	body := resp.Body()
	if err = checkRatesDocument(body); err != nil {
		logger.FromContext(ctx).Debug().
			Str("func", "*httpRateProvider.FetchRates").
			Int("status", resp.StatusCode()).
			Int("size", len(body)).
			Msg("rejected provider response")
		return nil, err
	}

	return json.RawMessage(body), nil
}

func checkRatesDocument(body []byte) error {
	var doc struct {
		Rates json.RawMessage `json:"rates"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamInvalidBody, err)
	}

	rates := bytes.TrimSpace(doc.Rates)
	if len(rates) == 0 || rates[0] != '{' {
		return ErrUpstreamInvalidBody
	}
	return nil
}
