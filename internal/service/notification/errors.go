package notification

import (
	"errors"

	"backoffice/internal/service/delivery"
)

var (
	// заказы читаются тем же repository/order, что и у delivery-сервиса,
	// sentinel должен быть общим
	ErrOrderNotFound = delivery.ErrOrderNotFound

	ErrClientNotFound = errors.New("client not found")
)
