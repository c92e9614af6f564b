package entities

import "time"

type Delivery struct {
	ID               string
	OrderID          string
	ClientID         string
	Status           DeliveryStatusType
	StatusHistory    []StatusHistoryEntry
	TrackingNumber   string
	ScheduledDate    *time.Time
	DeliveryFee      float64
	RecipientName    string
	RecipientPhone   string
	DeliveryLocation string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryScheduled DeliveryStatusType = "scheduled"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryFailed    DeliveryStatusType = "failed"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

const DefaultDeliveryStatus = DeliveryPending

func (s DeliveryStatusType) String() string {
	return string(s)
}

// StatusHistoryEntry - одна запись аудита статуса. История append-only:
// записи никогда не переписываются и не удаляются.
type StatusHistoryEntry struct {
	Status    DeliveryStatusType
	Timestamp time.Time
	Note      string
}

type DeliveryCreate struct {
	OrderID          string
	Status           *DeliveryStatusType
	TrackingNumber   *string
	ScheduledDate    *time.Time
	DeliveryFee      *float64
	RecipientName    *string
	RecipientPhone   *string
	DeliveryLocation *string
}

// DeliveryModify - частичное обновление описательных полей.
// Статус сюда не входит: он меняется только через переходы.
type DeliveryModify struct {
	ID               string
	ScheduledDate    *time.Time
	DeliveryFee      *float64
	RecipientName    *string
	RecipientPhone   *string
	DeliveryLocation *string
}
