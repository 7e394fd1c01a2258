// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

// Package server runs the HTTP server of the API.
//
// It handles startup, signal handling and graceful shutdown, after which
// the resources handed to it (the database handle) are closed.
package server
