//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"backoffice/internal/entities"
)

type OrderGateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type DeliveryService interface {
	CreateDelivery(ctx context.Context, deliveryCreate entities.DeliveryCreate) (*entities.Delivery, error)
	CancelDeliveryByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
}

type (
	ExecuteFn      func(ctx context.Context, orderID string) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
