package service

import (
	"github.com/vmelikhov/orderdesk/internal/config"
	"github.com/vmelikhov/orderdesk/internal/logger"
	"github.com/vmelikhov/orderdesk/internal/store"
)

type Services struct {
	AuthService  AuthService
	OrderService OrderService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg, logger),
		OrderService: NewOrderService(storages.UserRepository, storages.OrderRepository, logger),
	}
}
