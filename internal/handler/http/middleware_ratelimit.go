// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/metrics"
)

const (
	rateLimitScopeAPI  = "api"
	rateLimitScopeAuth = "auth"
)

type visitor struct {
	limiter     *rate.Limiter
	windowStart time.Time
}

// ipRateLimiter allows every client IP requests requests per fixed window.
// The window starts with the first request from an IP; once it has elapsed
// the next request opens a new window with the full budget.
type ipRateLimiter struct {
	scope    string
	message  string
	requests int
	window   time.Duration
	now      func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

// newIPRateLimiter returns nil when requests or window is not positive; a
// nil limiter lets every request through.
func newIPRateLimiter(scope string, requests int, window time.Duration, message string) *ipRateLimiter {
	if requests <= 0 || window <= 0 {
		return nil
	}
	return &ipRateLimiter{
		scope:    scope,
		message:  message,
		requests: requests,
		window:   window,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

// allow spends one request of key's current window. When the window's
// budget is used up it returns false and the time left until the window
// ends.
func (l *ipRateLimiter) allow(key string) (time.Duration, bool) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	v, ok := l.visitors[key]
	if !ok || now.Sub(v.windowStart) >= l.window {
		// A zero limit never refills: the bucket holds exactly one
		// window's budget.
		v = &visitor{limiter: rate.NewLimiter(0, l.requests), windowStart: now}
		l.visitors[key] = v
	}

	if !v.limiter.AllowN(now, 1) {
		return v.windowStart.Add(l.window).Sub(now), false
	}
	return 0, true
}

// sweep drops visitors whose window has ended, at most once per window.
// Callers hold l.mu.
func (l *ipRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	for key, v := range l.visitors {
		if now.Sub(v.windowStart) >= l.window {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

// middleware answers 429 with a Retry-After header once the client IP has
// spent its budget.
func (l *ipRateLimiter) middleware(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		retryAfter, ok := l.allow(ip)
		if !ok {
			logger.FromRequest(r).Warn().
				Str("scope", l.scope).
				Str("ip", ip).
				Dur("retry_after", retryAfter).
				Msg("request budget exceeded")
			metrics.RecordRateLimited(l.scope)

			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(retryAfter)))
			writeMessage(w, r, http.StatusTooManyRequests, l.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds())))
}

// clientIP returns the host part of RemoteAddr, which chi's RealIP
// middleware has already replaced with the forwarded client address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
