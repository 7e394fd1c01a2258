// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient(utils.WithTimeout(15 * time.Second))
//	resp, err := client.R().SetContext(ctx).Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures the underlying resty.Client.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the base URL requests are resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds every request made by the client.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(userAgent string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader("User-Agent", userAgent)
	}
}

// NewHTTPClient creates an independent HTTPClient. Every client owns its
// own configuration, connection pool and state.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New().SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
