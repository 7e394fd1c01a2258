// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package service

// TripServiceWrapper defines middleware composition for TripService.
// Implementations wrap an existing TripService to add behavior such as
// validation.
type TripServiceWrapper interface {
	Wrap(TripService) TripService
}
