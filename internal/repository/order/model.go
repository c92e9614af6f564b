package order

import "time"

type OrderDB struct {
	ID          string
	OrderNumber string
	ClientID    string
	Status      string
	CreatedAt   time.Time
}
