package dto

import (
	"time"

	"backoffice/internal/entities"
)

type DeliveryCreateRequest struct {
	OrderID          string     `json:"order_id"`
	Status           *string    `json:"status,omitempty"`
	TrackingNumber   *string    `json:"tracking_number,omitempty"`
	ScheduledDate    *time.Time `json:"scheduled_date,omitempty"`
	DeliveryFee      *float64   `json:"delivery_fee,omitempty"`
	RecipientName    *string    `json:"recipient_name,omitempty"`
	RecipientPhone   *string    `json:"recipient_phone,omitempty"`
	DeliveryLocation *string    `json:"delivery_location,omitempty"`
}

type DeliveryStatusUpdateRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

type DeliveryDetailsUpdateRequest struct {
	ScheduledDate    *time.Time `json:"scheduled_date,omitempty"`
	DeliveryFee      *float64   `json:"delivery_fee,omitempty"`
	RecipientName    *string    `json:"recipient_name,omitempty"`
	RecipientPhone   *string    `json:"recipient_phone,omitempty"`
	DeliveryLocation *string    `json:"delivery_location,omitempty"`
}

type StatusHistoryEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

type DeliveryResponse struct {
	ID               string               `json:"id"`
	OrderID          string               `json:"order_id"`
	ClientID         string               `json:"client_id"`
	Status           string               `json:"status"`
	StatusHistory    []StatusHistoryEntry `json:"status_history"`
	TrackingNumber   string               `json:"tracking_number"`
	ScheduledDate    *time.Time           `json:"scheduled_date,omitempty"`
	DeliveryFee      float64              `json:"delivery_fee"`
	RecipientName    string               `json:"recipient_name,omitempty"`
	RecipientPhone   string               `json:"recipient_phone,omitempty"`
	DeliveryLocation string               `json:"delivery_location,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

func NewDeliveryResponse(d *entities.Delivery) DeliveryResponse {
	history := make([]StatusHistoryEntry, 0, len(d.StatusHistory))
	for _, h := range d.StatusHistory {
		history = append(history, StatusHistoryEntry{
			Status:    h.Status.String(),
			Timestamp: h.Timestamp,
			Note:      h.Note,
		})
	}

	return DeliveryResponse{
		ID:               d.ID,
		OrderID:          d.OrderID,
		ClientID:         d.ClientID,
		Status:           d.Status.String(),
		StatusHistory:    history,
		TrackingNumber:   d.TrackingNumber,
		ScheduledDate:    d.ScheduledDate,
		DeliveryFee:      d.DeliveryFee,
		RecipientName:    d.RecipientName,
		RecipientPhone:   d.RecipientPhone,
		DeliveryLocation: d.DeliveryLocation,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}
