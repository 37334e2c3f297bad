package service

import "errors"

var (
	// ErrMissingCredentials is returned when a register or login request
	// omits the username or the password.
	ErrMissingCredentials = errors.New("you must enter a username and password")

	// ErrPasswordTooShort is returned when a registration password does not
	// meet the minimum length requirement.
	ErrPasswordTooShort = errors.New("password too short")

	// ErrIncorrectCredentials is returned on login when the username does
	// not exist or the password does not match. The two cases share one
	// error so responses cannot be used to probe for registered usernames.
	ErrIncorrectCredentials = errors.New("username or password is incorrect")

	// ErrNoSuchUser is returned when an order listing targets a username
	// that does not resolve to an account.
	ErrNoSuchUser = errors.New("user does not exist")

	// ErrTokenInvalid is returned when a bearer token fails verification or
	// no longer resolves to an existing user. Callers do not need to
	// distinguish low-level JWT failures.
	ErrTokenInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps failures to sign a new JWT.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
