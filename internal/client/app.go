// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/adapter"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// App runs client operations against the API and prints their results.
type App struct {
	api     adapter.APIAdapter
	session SessionStore
	out     io.Writer

	logger *logger.Logger
}

func NewApp(api adapter.APIAdapter, session SessionStore, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:     api,
		session: session,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Register(ctx context.Context, creds models.Credentials) error {
	userID, err := a.api.Register(ctx, creds)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	fmt.Fprintf(a.out, "User registered successfully (id %d).\n", userID)
	return nil
}

// Login stores the returned token for later invocations.
func (a *App) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := a.api.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return errors.New("login succeeded but no token returned")
	}

	if err = a.session.Save(resp.Token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Login successful. Logged in as %s.\n", resp.User.Email)
	return nil
}

func (a *App) Logout() error {
	if err := a.session.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) ListTrips(ctx context.Context) error {
	if err := a.restoreSession(); err != nil {
		return err
	}

	trips, err := a.api.ListTrips(ctx)
	if err != nil {
		return a.sessionError("list trips", err)
	}

	renderTrips(a.out, trips)
	return nil
}

func (a *App) ShowTrip(ctx context.Context, id int64) error {
	if err := a.restoreSession(); err != nil {
		return err
	}

	trip, err := a.api.GetTrip(ctx, id)
	if err != nil {
		return a.sessionError("get trip", err)
	}

	renderTrip(a.out, trip)
	return nil
}

func (a *App) CreateTrip(ctx context.Context, in models.TripInput) error {
	if err := a.restoreSession(); err != nil {
		return err
	}

	trip, err := a.api.CreateTrip(ctx, in)
	if err != nil {
		return a.sessionError("create trip", err)
	}

	renderTrip(a.out, trip)
	return nil
}

func (a *App) UpdateTrip(ctx context.Context, id int64, update models.TripUpdate) error {
	if err := a.restoreSession(); err != nil {
		return err
	}

	trip, err := a.api.UpdateTrip(ctx, id, update)
	if err != nil {
		return a.sessionError("update trip", err)
	}

	renderTrip(a.out, trip)
	return nil
}

func (a *App) DeleteTrip(ctx context.Context, id int64) error {
	if err := a.restoreSession(); err != nil {
		return err
	}

	if err := a.api.DeleteTrip(ctx, id); err != nil {
		return a.sessionError("delete trip", err)
	}

	fmt.Fprintln(a.out, "Trip deleted successfully.")
	return nil
}

func (a *App) StaticRates(ctx context.Context) error {
	rates, err := a.api.StaticRates(ctx)
	if err != nil {
		return fmt.Errorf("rates: %w", err)
	}

	renderRates(a.out, "USD", rates)
	return nil
}

func (a *App) LatestRates(ctx context.Context, base string) error {
	latest, err := a.api.LatestRates(ctx, base)
	if err != nil {
		return fmt.Errorf("latest rates: %w", err)
	}

	renderRates(a.out, latest.Base, latest.Rates)
	return nil
}

func (a *App) Timeseries(ctx context.Context, req models.TimeseriesRequest) error {
	ts, err := a.api.Timeseries(ctx, req)
	if err != nil {
		return fmt.Errorf("timeseries: %w", err)
	}

	renderTimeseries(a.out, ts)
	return nil
}

func (a *App) restoreSession() error {
	token, err := a.session.Load()
	if err != nil {
		return err
	}
	a.api.SetToken(token)
	return nil
}

// sessionError drops a stored token the server refused.
func (a *App) sessionError(op string, err error) error {
	if errors.Is(err, adapter.ErrForbidden) || errors.Is(err, adapter.ErrUnauthorized) {
		if clearErr := a.session.Clear(); clearErr != nil {
			a.logger.Warn().Err(clearErr).Msg("could not clear rejected session")
		}
		return fmt.Errorf("%s: %w", op, ErrSessionExpired)
	}
	return fmt.Errorf("%s: %w", op, err)
}
