package order

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/entities"
)

type Service struct {
	orderGateway  OrderGateway
	statusFactory HandlerFactory
}

func New(orderGateway OrderGateway, statusFactory HandlerFactory) *Service {
	return &Service{
		orderGateway:  orderGateway,
		statusFactory: statusFactory,
	}
}

// ProcessOrderStatusChange реагирует на событие смены статуса заказа:
// подтвержденный заказ получает доставку, отмененный - отмену доставки.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, fmt.Errorf("order id and status are required")
	}

	// Верификация: заказ должен существовать в БД бэк-офиса.
	// Диспетчеризация идет по статусу из базы, а не из события:
	// событие могло устареть, пока лежало в топике.
	order, err := s.orderGateway.GetOrderByID(ctx, *orderModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", *orderModify.ID, err)
	}

	executeFn, err := s.statusFactory.GetHandler(order.Status)
	if err != nil {
		// статусы без обработчика просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order.ID); err != nil {
		return nil, err
	}

	return order, nil
}
