// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package server

import "errors"

// errNoHTTPHandler means NewServer got no address or no router to serve.
var errNoHTTPHandler = errors.New("http server needs an address and a handler")
