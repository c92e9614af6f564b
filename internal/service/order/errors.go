package order

import (
	"errors"

	"backoffice/internal/service/delivery"
)

var (
	ErrUndefinedStatus = errors.New("undefined order status")

	// заказы читает общий repository/order, sentinel живет у delivery-сервиса
	ErrOrderNotFound = delivery.ErrOrderNotFound
)
