package delivery

import (
	"fmt"
	"strings"

	"backoffice/internal/entities"
)

// allowedTransitions - таблица переходов статусов доставки.
// Таблица это данные, а не ветвления: её целиком проверяют тесты.
// Переход в тот же статус нелегален, ни одно состояние себя не перечисляет.
var allowedTransitions = map[entities.DeliveryStatusType][]entities.DeliveryStatusType{
	entities.DeliveryPending:   {entities.DeliveryScheduled, entities.DeliveryInTransit, entities.DeliveryCancelled},
	entities.DeliveryScheduled: {entities.DeliveryInTransit, entities.DeliveryCancelled},
	entities.DeliveryInTransit: {entities.DeliveryDelivered, entities.DeliveryFailed},
	entities.DeliveryDelivered: {}, // терминальный
	entities.DeliveryFailed:    {entities.DeliveryScheduled, entities.DeliveryInTransit},
	entities.DeliveryCancelled: {entities.DeliveryPending},
}

// ValidateStatusTransition решает, легален ли переход current -> next.
// Чистая функция без побочных эффектов; ошибка всегда называет оба статуса.
func ValidateStatusTransition(current, next entities.DeliveryStatusType) error {
	allowed, ok := allowedTransitions[current]
	if !ok {
		return fmt.Errorf("%w: %q (current, requested transition to %q)", ErrUnknownStatus, current, next)
	}
	if _, ok := allowedTransitions[next]; !ok {
		return fmt.Errorf("%w: %q (requested from %q)", ErrUnknownStatus, next, current)
	}

	for _, s := range allowed {
		if s == next {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current, next)
}

func isKnownStatus(status entities.DeliveryStatusType) bool {
	_, ok := allowedTransitions[status]
	return ok
}

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidDeliveryID(id string) bool {
	return strings.TrimSpace(id) != ""
}
