// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID(t *testing.T) {
	first := NewTraceID()
	second := NewTraceID()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}

func TestTraceIDOrNew(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "empty", incoming: "", reused: false},
		{name: "plain token", incoming: "req-42", reused: true},
		{name: "uuid", incoming: "550e8400-e29b-41d4-a716-446655440000", reused: true},
		{name: "too long", incoming: strings.Repeat("a", MaxTraceIDLength+1), reused: false},
		{name: "max length", incoming: strings.Repeat("a", MaxTraceIDLength), reused: true},
		{name: "contains space", incoming: "a b", reused: false},
		{name: "contains newline", incoming: "a\nb", reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TraceIDOrNew(tt.incoming)
			if tt.reused {
				assert.Equal(t, tt.incoming, got)
				return
			}
			assert.NotEqual(t, tt.incoming, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}
