package entities

import "time"

type Order struct {
	ID          string
	OrderNumber string
	ClientID    string
	Status      OrderStatusType
	CreatedAt   time.Time
}

type OrderStatusType string

const (
	OrderCreated   OrderStatusType = "created"
	OrderConfirmed OrderStatusType = "confirmed"
	OrderCancelled OrderStatusType = "cancelled"
	OrderCompleted OrderStatusType = "completed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID     *string
	Status *OrderStatusType
}
