// Package common defines shared constants and sentinel errors used across
// skyfare components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth business-rule errors. Surfaced verbatim to the caller, never retried.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")

	// Flight details lookups do not fall back to canned data.
	ErrDetailsFetch = errors.New("failed to get flight details, please try again")
)
