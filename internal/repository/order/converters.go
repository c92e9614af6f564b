package order

import "backoffice/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		ClientID:    o.ClientID,
		Status:      entities.OrderStatusType(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}
