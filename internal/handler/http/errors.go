package http

import "errors"

// Sentinel errors raised at the HTTP layer. Callers can match against them
// with [errors.Is].
var (
	// ErrUnauthorized is reported by protected handlers when the auth
	// middleware did not attach a user to the request context.
	ErrUnauthorized = errors.New("you must be logged in to perform this action")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
