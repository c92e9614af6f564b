//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
	GetAll(ctx context.Context) ([]entities.Delivery, error)

	// UpdateStatus - условная запись: выигрывает ровно один из конкурентных
	// переходов, проигравший получает ErrTransitionConflict.
	UpdateStatus(ctx context.Context, id string, current entities.DeliveryStatusType, entry entities.StatusHistoryEntry) (*entities.Delivery, error)
	UpdateDetails(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)

	CountByStatus(ctx context.Context) (map[entities.DeliveryStatusType]int64, error)
}

type OrderGateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type Notifier interface {
	NotifyStatusChange(ctx context.Context, deliveryEntity *entities.Delivery, status entities.DeliveryStatusType) error
}

type EventPublisher interface {
	DeliveryCreated(ctx context.Context, deliveryEntity *entities.Delivery) error
	DeliveryStatusUpdated(ctx context.Context, deliveryEntity *entities.Delivery, note string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
