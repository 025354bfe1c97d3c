// Package retryx retries failable operations on transient server errors.
//
// Only failures carrying an HTTP status in [500,600) are retried; validation,
// business-rule, 4xx and plain network errors propagate immediately. The wait
// between attempts grows linearly: delay, 2*delay, 3*delay, ...
//
// The wrapper is available to any call site but is always applied explicitly
// by the caller.
package retryx

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultRetries = 3
	DefaultDelay   = time.Second
)

// Do invokes op and returns its result. On failure it re-raises immediately
// when retries are exhausted, when ctx is already canceled, or when the error
// is not a transient server error; otherwise it waits delay*attempt and tries
// again with one retry fewer.
func Do[T any](ctx context.Context, retries int, delay time.Duration, op func(context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 1; ; attempt++ {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if retries <= 0 {
			return zero, err
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		if !isServerError(err) {
			return zero, err
		}

		select {
		case <-time.After(delay * time.Duration(attempt)):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
		retries--
	}
}

// isServerError reports whether err carries an HTTP status in [500,600).
// The transport's StatusError satisfies the probed interface.
func isServerError(err error) bool {
	var sc interface{ HTTPStatus() int }
	if !errors.As(err, &sc) {
		return false
	}
	code := sc.HTTPStatus()
	return code >= 500 && code < 600
}
