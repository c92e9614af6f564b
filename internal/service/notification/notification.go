package notification

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

type template struct {
	subject string
	body    string // fmt-шаблон, аргументы: имя клиента, номер заказа, трекинг-номер
}

// notifyTemplates - письма уходят только для этих четырёх статусов,
// остальные статусы уведомлений не порождают.
var notifyTemplates = map[entities.DeliveryStatusType]template{
	entities.DeliveryScheduled: {
		subject: "Your delivery has been scheduled",
		body:    "Hello %s,\n\nDelivery for order %s has been scheduled.\nTracking number: %s.\n\nYour back office team",
	},
	entities.DeliveryInTransit: {
		subject: "Your delivery is on its way",
		body:    "Hello %s,\n\nDelivery for order %s is now in transit.\nTracking number: %s.\n\nYour back office team",
	},
	entities.DeliveryDelivered: {
		subject: "Your delivery has arrived",
		body:    "Hello %s,\n\nDelivery for order %s has been delivered.\nTracking number: %s.\n\nYour back office team",
	},
	entities.DeliveryFailed: {
		subject: "Delivery attempt failed",
		body:    "Hello %s,\n\nDelivery attempt for order %s has failed. We will contact you to arrange a retry.\nTracking number: %s.\n\nYour back office team",
	},
}

type Notification struct {
	orderGateway  OrderGateway
	clientGateway ClientGateway
	mailer        Mailer
	log           serviceLogger
}

func New(log serviceLogger, orderGateway OrderGateway, clientGateway ClientGateway, mailer Mailer) *Notification {
	return &Notification{
		orderGateway:  orderGateway,
		clientGateway: clientGateway,
		mailer:        mailer,
		log:           log,
	}
}

// NotifyStatusChange шлёт клиенту письмо о смене статуса доставки.
// Недостижимый заказ, клиент или клиент без email - тихий no-op:
// не у каждой доставки есть контакт для связи.
func (n *Notification) NotifyStatusChange(ctx context.Context, deliveryEntity *entities.Delivery, status entities.DeliveryStatusType) error {
	tmpl, ok := notifyTemplates[status]
	if !ok {
		return nil
	}

	order, err := n.orderGateway.GetOrderByID(ctx, deliveryEntity.OrderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil
		}
		return fmt.Errorf("lookup order %s: %w", deliveryEntity.OrderID, err)
	}

	client, err := n.clientGateway.GetClientByID(ctx, order.ClientID)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			return nil
		}
		return fmt.Errorf("lookup client %s: %w", order.ClientID, err)
	}
	if client.Email == "" {
		n.log.With(
			logger.NewField("client", client.ID),
			logger.NewField("delivery", deliveryEntity.ID),
		).Info("client has no email, skipping notification")
		return nil
	}

	body := fmt.Sprintf(tmpl.body, client.Name, order.OrderNumber, deliveryEntity.TrackingNumber)
	if err := n.mailer.SendEmail(ctx, client.Email, tmpl.subject, body); err != nil {
		return fmt.Errorf("send email to %s: %w", client.Email, err)
	}

	return nil
}
