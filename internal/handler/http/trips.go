// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"net/http"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/utils"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

func (h *Handler) listTrips(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	trips, err := h.services.TripService.List(r.Context(), identity.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if trips == nil {
		trips = []models.Trip{}
	}

	utils.WriteJSON(w, trips, http.StatusOK)
}

func (h *Handler) getTrip(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	tripID, err := tripIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	trip, err := h.services.TripService.Get(r.Context(), identity.UserID, tripID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, trip, http.StatusOK)
}

func (h *Handler) createTrip(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var in models.TripInput
	if err = decodeJSON(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	trip, err := h.services.TripService.Create(r.Context(), identity.UserID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("trip_id", trip.ID).Int64("user_id", identity.UserID).Msg("trip created")
	utils.WriteJSON(w, trip, http.StatusCreated)
}

func (h *Handler) updateTrip(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	tripID, err := tripIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.TripUpdate
	if err = decodeJSON(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	trip, err := h.services.TripService.Update(r.Context(), identity.UserID, tripID, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, trip, http.StatusOK)
}

func (h *Handler) deleteTrip(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	tripID, err := tripIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.TripService.Delete(r.Context(), identity.UserID, tripID); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("trip_id", tripID).Int64("user_id", identity.UserID).Msg("trip deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: "Trip deleted successfully"}, http.StatusOK)
}
