// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := describeErrorBody(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// describeErrorBody renders an API error body as one line, including the
// per-field details of validation failures. Non-JSON bodies are returned
// trimmed.
func describeErrorBody(raw []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err != nil || errResp.Error == "" {
		return strings.TrimSpace(string(raw))
	}

	parts := []string{errResp.Error}
	for _, d := range errResp.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	if errResp.Message != "" {
		parts = append(parts, errResp.Message)
	}
	return strings.Join(parts, "; ")
}
