// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Trip is a travel plan owned by exactly one user.
type Trip struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TripInput is the body of a create request. Pointers distinguish missing
// fields from zero values so validation can report them.
type TripInput struct {
	Title       *string  `json:"title,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`

	// PriceMalformed is set when the body carried a price that is neither
	// a number nor a numeric string. Price is nil in that case.
	PriceMalformed bool `json:"-"`
}

// UnmarshalJSON accepts the price as a JSON number or a numeric string.
// Any other price value is recorded in PriceMalformed instead of failing
// the whole body.
func (in *TripInput) UnmarshalJSON(data []byte) error {
	type plain TripInput
	var body struct {
		plain
		Price *looseNumber `json:"price,omitempty"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	*in = TripInput(body.plain)
	in.Price, in.PriceMalformed = body.Price.resolve()
	return nil
}

// TripUpdate is a partial update: only non-nil fields are validated and
// written.
type TripUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`

	// PriceMalformed has the same meaning as in TripInput.
	PriceMalformed bool `json:"-"`
}

// UnmarshalJSON decodes the price the same way TripInput does.
func (u *TripUpdate) UnmarshalJSON(data []byte) error {
	type plain TripUpdate
	var body struct {
		plain
		Price *looseNumber `json:"price,omitempty"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	*u = TripUpdate(body.plain)
	u.Price, u.PriceMalformed = body.Price.resolve()
	return nil
}

// IsEmpty reports whether the update carries no field at all. A malformed
// price counts as present so that it is reported by validation.
func (u TripUpdate) IsEmpty() bool {
	return u.Title == nil && u.Location == nil && u.Price == nil && u.Description == nil && !u.PriceMalformed
}

// looseNumber holds a JSON number or a string containing one. Decoding
// never fails; ok reports whether the value was usable.
type looseNumber struct {
	value float64
	ok    bool
}

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	v, err := strconv.ParseFloat(raw, 64)
	n.value = v
	n.ok = err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
	return nil
}

// resolve returns the decoded value and whether a price was sent but
// could not be read. A nil receiver means the field was absent or null.
func (n *looseNumber) resolve() (*float64, bool) {
	if n == nil {
		return nil, false
	}
	if !n.ok {
		return nil, true
	}
	v := n.value
	return &v, false
}
