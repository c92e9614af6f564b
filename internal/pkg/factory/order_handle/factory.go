package order_handle

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/entities"
	deliveryservice "backoffice/internal/service/delivery"
	"backoffice/internal/service/order"
)

type StatusHandlerFactory struct {
	deliveryService order.DeliveryService
}

func NewStatusHandlerFactory(deliveryService order.DeliveryService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		deliveryService: deliveryService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderConfirmed:
		return f.confirmedHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		// created и completed доставку не трогают
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) confirmedHandler(ctx context.Context, orderID string) error {
	_, err := f.deliveryService.CreateDelivery(ctx, entities.DeliveryCreate{OrderID: orderID})
	if err != nil {
		// повторная доставка события - доставка уже создана, это не ошибка
		if errors.Is(err, deliveryservice.ErrDeliveryExists) {
			return nil
		}
		return fmt.Errorf("create delivery for confirmed order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID string) error {
	_, err := f.deliveryService.CancelDeliveryByOrderID(ctx, orderID)
	if err != nil {
		// нет доставки или она уже в терминальном статусе - отменять нечего
		if errors.Is(err, deliveryservice.ErrDeliveryNotFound) ||
			errors.Is(err, deliveryservice.ErrInvalidStatusTransition) {
			return nil
		}
		return fmt.Errorf("cancel delivery for cancelled order %s: %w", orderID, err)
	}
	return nil
}
