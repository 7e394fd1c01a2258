// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package handler

import "errors"

var errNoHTTPAddress = errors.New("no http address configured, nothing to serve")
