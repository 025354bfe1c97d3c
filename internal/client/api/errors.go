package api

import (
	"errors"
	"fmt"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: %s returned status %d", e.Path, e.Code)
}

// HTTPStatus exposes the response code to classifiers such as the retry
// wrapper.
func (e *StatusError) HTTPStatus() int { return e.Code }

// IsServerError reports whether err is a transient server failure
// (HTTP status in [500,600)) and therefore eligible for retry.
func IsServerError(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Code >= 500 && se.Code < 600
}
