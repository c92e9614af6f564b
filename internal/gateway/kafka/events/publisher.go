package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"backoffice/internal/entities"
)

const (
	EventDeliveryCreated       = "DELIVERY_CREATED"
	EventDeliveryStatusUpdated = "DELIVERY_STATUS_UPDATED"
)

type envelope struct {
	Event      string          `json:"event"`
	DeliveryID string          `json:"delivery_id"`
	OrderID    string          `json:"order_id"`
	Status     string          `json:"status"`
	Note       string          `json:"note,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	Delivery   deliveryPayload `json:"delivery"`
}

type deliveryPayload struct {
	ID               string     `json:"id"`
	OrderID          string     `json:"order_id"`
	ClientID         string     `json:"client_id"`
	Status           string     `json:"status"`
	TrackingNumber   string     `json:"tracking_number"`
	ScheduledDate    *time.Time `json:"scheduled_date,omitempty"`
	DeliveryFee      float64    `json:"delivery_fee"`
	RecipientName    string     `json:"recipient_name,omitempty"`
	RecipientPhone   string     `json:"recipient_phone,omitempty"`
	DeliveryLocation string     `json:"delivery_location,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Publisher публикует доменные события доставки в Kafka.
// Ключ партиционирования - id доставки: события одной доставки упорядочены.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) DeliveryCreated(ctx context.Context, deliveryEntity *entities.Delivery) error {
	return p.publish(ctx, EventDeliveryCreated, deliveryEntity, "")
}

func (p *Publisher) DeliveryStatusUpdated(ctx context.Context, deliveryEntity *entities.Delivery, note string) error {
	return p.publish(ctx, EventDeliveryStatusUpdated, deliveryEntity, note)
}

func (p *Publisher) publish(ctx context.Context, event string, deliveryEntity *entities.Delivery, note string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(envelope{
		Event:      event,
		DeliveryID: deliveryEntity.ID,
		OrderID:    deliveryEntity.OrderID,
		Status:     deliveryEntity.Status.String(),
		Note:       note,
		OccurredAt: time.Now().UTC(),
		Delivery:   toPayload(deliveryEntity),
	})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(deliveryEntity.ID),
		Value: sarama.ByteEncoder(value),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish %s event: %w", event, err)
	}
	return nil
}

func toPayload(d *entities.Delivery) deliveryPayload {
	return deliveryPayload{
		ID:               d.ID,
		OrderID:          d.OrderID,
		ClientID:         d.ClientID,
		Status:           d.Status.String(),
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
