// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/config"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/service"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer without dereferencing it, so nil is safe for
// construction-time tests.
func newTestServices() *service.Services {
	return nil
}

// TestNewHandlers_HTTPAddress verifies that a configured HTTP address yields
// an initialised HTTP handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":3000"},
	}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that without an HTTP address no
// handlers are created and the sentinel error is returned.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.StructuredConfig{}, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, errNoHTTPAddress)
	assert.Nil(t, h)
}
