// Package service implements the business logic of the application:
// account registration and authentication, token lifecycle, and order
// listing with ownership resolution.
package service

import (
	"context"

	"github.com/vmelikhov/orderdesk/models"
)

// AuthService owns the registration, login, and token lifecycle flows.
type AuthService interface {
	// Register creates a new account from the given credentials.
	// Validation failures are reported through sentinel errors and stop
	// processing immediately; no account is created after a failure.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates existing credentials. Wrong username and wrong
	// password are indistinguishable to the caller.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed JWT carrying the user's id and username.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ResolveToken validates a raw JWT string and resolves it to the
	// current user record. Any verification or lookup failure is reported
	// as ErrTokenInvalid.
	ResolveToken(ctx context.Context, tokenString string) (models.User, error)
}

// OrderService lists orders on behalf of an authenticated viewer.
type OrderService interface {
	// ListOrdersForUsername returns the orders of the user identified by
	// username. The viewer's own orders are listed without an extra
	// lookup; any other existing user's orders are readable by any
	// authenticated viewer. Returns ErrNoSuchUser when username does not
	// resolve to an account.
	ListOrdersForUsername(ctx context.Context, viewer models.User, username string) ([]models.Order, error)
}
