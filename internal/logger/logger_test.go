// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("test", "info"))
}

// TestNewLogger_Fields verifies that entries carry the role, a timestamp and
// the caller function.
func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role", "debug")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
}

func TestNewLogger_SetsGlobalLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	l := newLogger(&buf, "level-role", "warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	l.Info().Msg("suppressed")
	assert.Empty(t, buf.String())

	l.Warn().Msg("emitted")
	assert.NotEmpty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "", want: zerolog.InfoLevel},
		{in: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "inherited-role", "debug")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")
	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()}

	FromContext(l.WithContext(context.Background())).Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, &buf)["ctx-key"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
}
