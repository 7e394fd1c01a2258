// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

// Package client implements the easy-travel command-line client.
//
// It wires the cobra command tree to the REST API adapter, keeps the
// session token between invocations and renders responses as tables.
package client
