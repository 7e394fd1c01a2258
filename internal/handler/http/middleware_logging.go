// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
)

// withLogging writes one access-log entry per request. Server errors are
// logged at error level, client errors at warn.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.Status()
		logger.FromRequest(r).WithLevel(accessLogLevel(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
