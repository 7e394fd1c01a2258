// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package client

import (
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

const timeLayout = "2006-01-02 15:04"

// newTable returns a writer mirrored to w with the client's style.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderTrips(w io.Writer, trips []models.Trip) {
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Title", "Location", "Price (USD)", "Updated"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})

	for _, trip := range trips {
		t.AppendRow(table.Row{trip.ID, trip.Title, trip.Location, formatPrice(trip.Price), formatTime(trip.UpdatedAt)})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", len(trips)})

	t.Render()
}

func renderTrip(w io.Writer, trip models.Trip) {
	t := newTable(w)
	t.AppendRows([]table.Row{
		{"ID", trip.ID},
		{"Title", trip.Title},
		{"Location", trip.Location},
		{"Price (USD)", formatPrice(trip.Price)},
		{"Description", trip.Description},
		{"Created", formatTime(trip.CreatedAt)},
		{"Updated", formatTime(trip.UpdatedAt)},
	})
	t.Render()
}

// renderRates prints one row per currency, sorted by code.
func renderRates(w io.Writer, base string, rates models.RateTable) {
	t := newTable(w)
	if base != "" {
		t.SetTitle("Base: " + base)
	}
	t.AppendHeader(table.Row{"Currency", "Rate"})

	for _, code := range sortedCodes(rates) {
		t.AppendRow(table.Row{code, formatRate(rates[code])})
	}
	t.Render()
}

// renderTimeseries prints one row per day and currency, in date order.
func renderTimeseries(w io.Writer, ts models.Timeseries) {
	t := newTable(w)
	if ts.Base != "" {
		t.SetTitle("Base: " + ts.Base)
	}
	t.AppendHeader(table.Row{"Date", "Currency", "Rate"})

	dates := make([]string, 0, len(ts.Rates))
	for date := range ts.Rates {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	for _, date := range dates {
		day := ts.Rates[date]
		for _, code := range sortedCodes(day) {
			t.AppendRow(table.Row{date, code, formatRate(day[code])})
		}
	}
	t.Render()
}

func sortedCodes(rates models.RateTable) []string {
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func formatRate(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timeLayout)
}
