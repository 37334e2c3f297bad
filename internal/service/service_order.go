package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmelikhov/orderdesk/internal/logger"
	"github.com/vmelikhov/orderdesk/internal/store"
	"github.com/vmelikhov/orderdesk/models"
)

// orderService is the concrete implementation of OrderService.
type orderService struct {
	userRepository  store.UserRepository
	orderRepository store.OrderRepository
	logger          *logger.Logger
}

// NewOrderService constructs an OrderService over the given repositories.
func NewOrderService(userRepository store.UserRepository, orderRepository store.OrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		userRepository:  userRepository,
		orderRepository: orderRepository,
		logger:          logger,
	}
}

// ListOrdersForUsername returns the orders of the user named by username.
//
// When the viewer asks for their own orders the stored viewer record is used
// directly and no extra lookup happens. For any other username the account
// is resolved first; a miss stops processing with ErrNoSuchUser before any
// order query runs. Cross-user reads are intentionally allowed for every
// authenticated viewer.
func (s *orderService) ListOrdersForUsername(ctx context.Context, viewer models.User, username string) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	if viewer.Username == username {
		orders, err := s.orderRepository.ListOrdersByUserID(ctx, viewer.ID)
		if err != nil {
			log.Err(err).Int64("user_id", viewer.ID).Msg("listing own orders failed")
			return nil, fmt.Errorf("listing orders failed: %w", err)
		}
		return orders, nil
	}

	owner, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil, ErrNoSuchUser
		}

		log.Err(err).Str("username", username).Msg("order owner lookup failed")
		return nil, fmt.Errorf("order owner lookup failed: %w", err)
	}

	orders, err := s.orderRepository.ListOrdersByUserID(ctx, owner.ID)
	if err != nil {
		log.Err(err).Int64("user_id", owner.ID).Msg("listing orders failed")
		return nil, fmt.Errorf("listing orders failed: %w", err)
	}

	return orders, nil
}
