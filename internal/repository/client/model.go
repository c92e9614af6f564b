package client

import "time"

type ClientDB struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
