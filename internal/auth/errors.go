package auth

import "errors"

var (
	// ErrNoToken is returned when the request carries no bearer token.
	ErrNoToken = errors.New("missing bearer token")
	// ErrInvalidToken is returned when the bearer token fails verification.
	ErrInvalidToken = errors.New("invalid bearer token")
	// ErrSecretEmpty is returned when the configured signing secret is empty.
	ErrSecretEmpty = errors.New("auth secret cannot be empty")
)
