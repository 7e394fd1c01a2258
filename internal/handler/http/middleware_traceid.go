// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"net/http"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request with a trace id, echoed in the response, and
// puts a child logger carrying it into the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := utils.TraceIDOrNew(r.Header.Get(traceIDHeader))

		l := h.logger.With().Str("trace_id", traceID).Logger()
		w.Header().Set(traceIDHeader, traceID)

		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
