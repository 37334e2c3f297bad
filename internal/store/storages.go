package store

import (
	"context"

	"github.com/vmelikhov/orderdesk/internal/config"
	"github.com/vmelikhov/orderdesk/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository  UserRepository
	OrderRepository OrderRepository
}

// NewStorages connects to the database described by cfg and constructs all
// repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, *DB, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, nil, err
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		OrderRepository: NewOrderRepository(db, log),
	}, db, nil
}
