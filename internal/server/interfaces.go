// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package server

// Server is a long-running process with a graceful stop.
type Server interface {
	// RunServer blocks until a stop signal arrives or serving fails.
	RunServer()
	// Shutdown drains in-flight requests and closes the resources the
	// server was given.
	Shutdown()
}
