// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package utils

import "github.com/google/uuid"

// MaxTraceIDLength is the longest caller-supplied trace id that is reused.
const MaxTraceIDLength = 128

// NewTraceID returns a time-ordered UUIDv7, or a random UUIDv4 if the clock
// source fails.
func NewTraceID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// TraceIDOrNew returns incoming when it is usable as a trace id, otherwise
// a fresh one. Usable means non-empty, at most MaxTraceIDLength bytes and
// printable ASCII only, so it is safe to echo in a header and a log line.
func TraceIDOrNew(incoming string) string {
	if incoming == "" || len(incoming) > MaxTraceIDLength {
		return NewTraceID()
	}
	for i := 0; i < len(incoming); i++ {
		if c := incoming[i]; c < 0x21 || c > 0x7e {
			return NewTraceID()
		}
	}
	return incoming
}
