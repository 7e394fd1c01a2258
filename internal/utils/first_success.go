// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package utils

import (
	"context"
	"fmt"
	"time"
)

// FallbackSource is the Outcome.Source reported when no attempt succeeded.
const FallbackSource = "fallback"

// Attempt is one named, context-aware, fallible way of producing a value.
type Attempt[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, error)
}

// AttemptError records why an attempt failed.
type AttemptError struct {
	Name string
	Err  error
}

func (e AttemptError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e AttemptError) Unwrap() error {
	return e.Err
}

// Outcome is the result of FirstSuccess.
type Outcome[T any] struct {
	Value    T
	Source   string
	Failures []AttemptError
}

// FirstSuccess runs attempts sequentially, each under its own timeout
// derived from ctx, and returns the first successful value. Every attempt
// is called at most once. When all attempts fail, or ctx is done, the value
// of fallback is returned with Source set to FallbackSource.
//
// A non-positive timeout leaves attempts bounded only by ctx.
func FirstSuccess[T any](ctx context.Context, timeout time.Duration, attempts []Attempt[T], fallback func() T) Outcome[T] {
	var failures []AttemptError

	for _, attempt := range attempts {
		if err := ctx.Err(); err != nil {
			failures = append(failures, AttemptError{Name: attempt.Name, Err: err})
			break
		}

		value, err := runAttempt(ctx, timeout, attempt)
		if err == nil {
			return Outcome[T]{Value: value, Source: attempt.Name, Failures: failures}
		}
		failures = append(failures, AttemptError{Name: attempt.Name, Err: err})
	}

	return Outcome[T]{Value: fallback(), Source: FallbackSource, Failures: failures}
}

func runAttempt[T any](ctx context.Context, timeout time.Duration, attempt Attempt[T]) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return attempt.Run(ctx)
}
