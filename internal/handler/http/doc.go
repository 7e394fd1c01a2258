// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

// Package http implements the HTTP transport layer of the easy-travel API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, request budgets,
// security headers, CORS and authentication are handled in this package
// before requests are delegated to the service layer.
package http
