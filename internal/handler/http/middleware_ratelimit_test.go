// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLimiter(requests int, window time.Duration) (*ipRateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := newIPRateLimiter(rateLimitScopeAPI, requests, window, "slow down")
	l.now = clock.Now
	return l, clock
}

func TestNewIPRateLimiter_Disabled(t *testing.T) {
	assert.Nil(t, newIPRateLimiter(rateLimitScopeAPI, 0, time.Minute, ""))
	assert.Nil(t, newIPRateLimiter(rateLimitScopeAPI, 10, 0, ""))

	var l *ipRateLimiter
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })
	rec := httptest.NewRecorder()
	l.middleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestIPRateLimiter_BudgetPerIP(t *testing.T) {
	l, _ := newTestLimiter(5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		_, ok := l.allow("10.0.0.1")
		require.True(t, ok, "request %d should pass", i+1)
	}

	retryAfter, ok := l.allow("10.0.0.1")
	assert.False(t, ok)
	assert.Positive(t, retryAfter)

	_, ok = l.allow("10.0.0.2")
	assert.True(t, ok, "other clients keep their own budget")
}

func TestIPRateLimiter_NoRefillWithinWindow(t *testing.T) {
	l, clock := newTestLimiter(5, 15*time.Minute)

	allowed := 0
	for i := 0; i < 10; i++ {
		if _, ok := l.allow("10.0.0.1"); ok {
			allowed++
		}
		clock.Advance(89 * time.Second)
	}

	assert.Equal(t, 5, allowed, "spacing requests out must not earn extra budget inside one window")
}

func TestIPRateLimiter_RetryAfterIsWindowRemainder(t *testing.T) {
	l, clock := newTestLimiter(5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		_, ok := l.allow("10.0.0.1")
		require.True(t, ok)
		clock.Advance(time.Minute)
	}

	retryAfter, ok := l.allow("10.0.0.1")
	require.False(t, ok)
	assert.Equal(t, 10*time.Minute, retryAfter)

	clock.Advance(10*time.Minute - time.Second)
	_, ok = l.allow("10.0.0.1")
	assert.False(t, ok, "budget stays spent until the window ends")

	clock.Advance(time.Second)
	for i := 0; i < 5; i++ {
		_, ok = l.allow("10.0.0.1")
		assert.True(t, ok, "request %d of the new window should pass", i+1)
	}
}

func TestIPRateLimiter_WindowResets(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	l.allow("10.0.0.1")
	l.allow("10.0.0.1")
	_, ok := l.allow("10.0.0.1")
	require.False(t, ok)

	clock.Advance(time.Minute)
	for i := 0; i < 2; i++ {
		_, ok = l.allow("10.0.0.1")
		assert.True(t, ok)
	}
	_, ok = l.allow("10.0.0.1")
	assert.False(t, ok)
}

func TestIPRateLimiter_SweepDropsIdleVisitors(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	l.allow("10.0.0.1")
	l.allow("10.0.0.2")
	require.Len(t, l.visitors, 2)

	clock.Advance(2 * time.Minute)
	l.allow("10.0.0.3")

	assert.Len(t, l.visitors, 1)
	assert.Contains(t, l.visitors, "10.0.0.3")
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := l.middleware(next)

	req := httptest.NewRequest(http.MethodGet, "/api/rates", nil)
	req.RemoteAddr = "192.0.2.7:5555"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req.RemoteAddr = "192.0.2.7:6666"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"slow down"}`, rec.Body.String())
	seconds, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.Equal(t, 60, seconds)
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(200*time.Millisecond))
	assert.Equal(t, 3, retryAfterSeconds(2100*time.Millisecond))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "203.0.113.9:1234"
	assert.Equal(t, "203.0.113.9", clientIP(req))

	req.RemoteAddr = "203.0.113.9"
	assert.Equal(t, "203.0.113.9", clientIP(req))

	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", clientIP(req))
}
