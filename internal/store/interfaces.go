// Package store implements the persistence layer of the application:
// PostgreSQL-backed repositories for user accounts and orders.
package store

import (
	"context"

	"github.com/vmelikhov/orderdesk/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrUsernameTaken when the username is
	// already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up a user by their unique username.
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks up a user by their internal identifier.
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// OrderRepository is the data-access contract for order records.
type OrderRepository interface {
	// ListOrdersByUserID returns every order owned by the given user in
	// insertion order. An empty slice is returned when the user has no
	// orders.
	ListOrdersByUserID(ctx context.Context, userID int64) ([]models.Order, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-level errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
