// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpAPIAdapter {
	t.Helper()
	a, err := NewHTTPAPIAdapter(serverURL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a.(*httpAPIAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:3000", want: "http://localhost:3000"},
		{in: "https://api.example.com/", want: "https://api.example.com"},
		{in: "  ", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice@example.com", creds.Email)

		writeJSON(t, w, http.StatusCreated, models.RegisterResponse{Message: "User registered successfully", UserID: 42})
	}))
	defer srv.Close()

	id, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestRegister_ValidationDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Validation failed",
			Details: []models.FieldError{{Field: "email", Message: "Invalid email"}},
		})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.Credentials{})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "email: Invalid email")
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{
			Message: "Login successful",
			Token:   "tok-123",
			User:    models.Identity{UserID: 1, Email: "alice@example.com"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.User.UserID)
	assert.Equal(t, "tok-123", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestTrips_SendBearerToken(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	trip := models.Trip{ID: 7, UserID: 1, Title: "Paris", Location: "France", Price: 100, CreatedAt: now, UpdatedAt: now}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/trips":
			writeJSON(t, w, http.StatusOK, []models.Trip{trip})
		case r.Method == http.MethodGet && r.URL.Path == "/api/trip/7":
			writeJSON(t, w, http.StatusOK, trip)
		case r.Method == http.MethodPost && r.URL.Path == "/api/trip":
			writeJSON(t, w, http.StatusCreated, trip)
		case r.Method == http.MethodPut && r.URL.Path == "/api/trip/7":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"price": 0.0}, body)
			updated := trip
			updated.Price = 0
			writeJSON(t, w, http.StatusOK, updated)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/trip/7":
			writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Trip deleted successfully"})
		case r.URL.Path == "/api/trip/8":
			writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "Trip not found"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")

	trips, err := a.ListTrips(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Trip{trip}, trips)

	got, err := a.GetTrip(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, trip, got)

	title := "Paris"
	_, err = a.CreateTrip(ctx, models.TripInput{Title: &title})
	require.NoError(t, err)

	zero := 0.0
	updated, err := a.UpdateTrip(ctx, 7, models.TripUpdate{Price: &zero})
	require.NoError(t, err)
	assert.Zero(t, updated.Price)

	require.NoError(t, a.DeleteTrip(ctx, 7))
	assert.ErrorIs(t, a.DeleteTrip(ctx, 8), ErrNotFound)
}

func TestRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/rates":
			writeJSON(t, w, http.StatusOK, models.RateTable{"USD": 1, "EUR": 0.92})
		case "/api/latest":
			assert.Equal(t, "EUR", r.URL.Query().Get("base"))
			writeJSON(t, w, http.StatusOK, models.LatestRates{Base: "EUR", Rates: models.RateTable{"USD": 1.08}})
		case "/api/timeseries":
			q := r.URL.Query()
			assert.Equal(t, "2024-01-01", q.Get("start_date"))
			assert.Equal(t, "2024-01-02", q.Get("end_date"))
			assert.Equal(t, "CNY", q.Get("symbols"))
			assert.False(t, q.Has("base"))
			writeJSON(t, w, http.StatusOK, models.Timeseries{Base: "USD", Rates: map[string]models.RateTable{
				"2024-01-01": {"CNY": 7.3},
				"2024-01-02": {"CNY": 7.3},
			}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	a := newTestAdapter(t, srv.URL)

	table, err := a.StaticRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.92, table["EUR"])

	latest, err := a.LatestRates(ctx, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", latest.Base)

	series, err := a.Timeseries(ctx, models.TimeseriesRequest{StartDate: "2024-01-01", EndDate: "2024-01-02", Symbols: "CNY"})
	require.NoError(t, err)
	assert.Len(t, series.Rates, 2)
}

func TestMapHTTPError_TooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusTooManyRequests, models.ErrorResponse{Error: "Too many requests from this IP, please try again later."})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).StaticRates(context.Background())
	require.ErrorIs(t, err, ErrTooManyRequests)
	assert.Contains(t, err.Error(), "please try again later")
}

func TestDescribeErrorBody(t *testing.T) {
	assert.Equal(t, "plain text", describeErrorBody([]byte(" plain text \n")))
	assert.Equal(t, "Internal server error; boom", describeErrorBody([]byte(`{"error":"Internal server error","message":"boom"}`)))
}
