// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/utils"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs an HTTP/REST implementation of [APIAdapter].
// It normalises and validates address, which may omit the scheme.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPAPIAdapter(address string, timeout time.Duration, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(timeout),
	)

	return &httpAPIAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIAdapter].
func (h *httpAPIAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIAdapter].
func (h *httpAPIAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [APIAdapter]. It POSTs to /api/register.
func (h *httpAPIAdapter) Register(ctx context.Context, creds models.Credentials) (int64, error) {
	var result models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&result).
		Post("/api/register")
	if err != nil {
		return 0, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.UserID, nil
}

// Login implements [APIAdapter]. It POSTs to /api/login and keeps the
// returned token for later calls.
func (h *httpAPIAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(result.Token)
	return result, nil
}

// ListTrips implements [APIAdapter]. GET /api/trips.
func (h *httpAPIAdapter) ListTrips(ctx context.Context) ([]models.Trip, error) {
	trips := make([]models.Trip, 0)

	resp, err := h.authedRequest(ctx).
		SetResult(&trips).
		Get("/api/trips")
	if err != nil {
		return nil, fmt.Errorf("list trips request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return trips, nil
}

// GetTrip implements [APIAdapter]. GET /api/trip/{id}.
func (h *httpAPIAdapter) GetTrip(ctx context.Context, id int64) (models.Trip, error) {
	var trip models.Trip

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&trip).
		Get("/api/trip/{id}")
	if err != nil {
		return models.Trip{}, fmt.Errorf("get trip request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Trip{}, err
	}

	return trip, nil
}

// CreateTrip implements [APIAdapter]. POST /api/trip.
func (h *httpAPIAdapter) CreateTrip(ctx context.Context, in models.TripInput) (models.Trip, error) {
	var trip models.Trip

	resp, err := h.authedRequest(ctx).
		SetBody(in).
		SetResult(&trip).
		Post("/api/trip")
	if err != nil {
		return models.Trip{}, fmt.Errorf("create trip request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Trip{}, err
	}

	return trip, nil
}

// UpdateTrip implements [APIAdapter]. PUT /api/trip/{id} with only the
// fields set in update.
func (h *httpAPIAdapter) UpdateTrip(ctx context.Context, id int64, update models.TripUpdate) (models.Trip, error) {
	var trip models.Trip

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(update).
		SetResult(&trip).
		Put("/api/trip/{id}")
	if err != nil {
		return models.Trip{}, fmt.Errorf("update trip request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Trip{}, err
	}

	return trip, nil
}

// DeleteTrip implements [APIAdapter]. DELETE /api/trip/{id}.
func (h *httpAPIAdapter) DeleteTrip(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/trip/{id}")
	if err != nil {
		return fmt.Errorf("delete trip request: %w", err)
	}

	return mapHTTPError(resp)
}

// StaticRates implements [APIAdapter]. GET /api/rates.
func (h *httpAPIAdapter) StaticRates(ctx context.Context) (models.RateTable, error) {
	var table models.RateTable

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&table).
		Get("/api/rates")
	if err != nil {
		return nil, fmt.Errorf("rates request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return table, nil
}

// LatestRates implements [APIAdapter]. GET /api/latest?base=.
func (h *httpAPIAdapter) LatestRates(ctx context.Context, base string) (models.LatestRates, error) {
	var latest models.LatestRates

	req := h.client.R().
		SetContext(ctx).
		SetResult(&latest)
	if base != "" {
		req.SetQueryParam("base", base)
	}

	resp, err := req.Get("/api/latest")
	if err != nil {
		return models.LatestRates{}, fmt.Errorf("latest rates request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LatestRates{}, err
	}

	return latest, nil
}

// Timeseries implements [APIAdapter]. GET /api/timeseries.
func (h *httpAPIAdapter) Timeseries(ctx context.Context, q models.TimeseriesRequest) (models.Timeseries, error) {
	var series models.Timeseries

	params := map[string]string{
		"start_date": q.StartDate,
		"end_date":   q.EndDate,
	}
	if q.Base != "" {
		params["base"] = q.Base
	}
	if q.Symbols != "" {
		params["symbols"] = q.Symbols
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&series).
		Get("/api/timeseries")
	if err != nil {
		return models.Timeseries{}, fmt.Errorf("timeseries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Timeseries{}, err
	}

	return series, nil
}

func (h *httpAPIAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
