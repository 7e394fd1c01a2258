// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status
// code and a "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
//	WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return WriteRawJSON(w, jsonData, statusCode)
}

// WriteRawJSON writes an already encoded JSON document unchanged.
func WriteRawJSON(w http.ResponseWriter, raw []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(raw)
}
