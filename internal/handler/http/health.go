// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import "net/http"

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
