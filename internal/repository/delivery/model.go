package delivery

import "time"

type DeliveryDB struct {
	ID               string
	OrderID          string
	ClientID         string
	Status           string
	TrackingNumber   string
	ScheduledDate    *time.Time
	DeliveryFee      float64
	RecipientName    string
	RecipientPhone   string
	DeliveryLocation string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type StatusHistoryDB struct {
	DeliveryID string
	Status     string
	Note       string
	CreatedAt  time.Time
}
