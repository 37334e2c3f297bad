package store

import (
	"context"
	"fmt"

	"github.com/vmelikhov/orderdesk/internal/logger"
	"github.com/vmelikhov/orderdesk/models"
)

// orderRepository is the PostgreSQL-backed implementation of [OrderRepository].
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// ListOrdersByUserID returns every order owned by the given user, oldest
// first. A user without orders yields an empty, non-nil slice so the HTTP
// layer serializes "[]" rather than "null".
func (r *orderRepository) ListOrdersByUserID(ctx context.Context, userID int64) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOrdersQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrdersByUserID").Msg("error: building query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*orderRepository.ListOrdersByUserID").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error: listing orders failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Item, &order.Quantity, &order.PriceCents, &order.CreatedAt); err != nil {
			log.Err(err).Str("func", "*orderRepository.ListOrdersByUserID").Msg("error: scanning order row failed")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrdersByUserID").Msg("error: iterating order rows failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}
