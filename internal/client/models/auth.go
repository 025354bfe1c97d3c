// Package models defines the data shapes exchanged between the client
// services: auth types, the raw flight-search API shapes, and the normalized
// offer shapes consumed by the presentation layer.
package models

import "time"

// User is an account as seen outside the auth service. The stored password is
// co-located internally but always stripped before a User leaves the service.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials is the login form payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterData is the registration form payload.
type RegisterData struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthResponse is returned by login and register: the user sans password plus
// a freshly minted session token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
