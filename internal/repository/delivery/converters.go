package delivery

import "backoffice/internal/entities"

func ToDomain(d *DeliveryDB, history []StatusHistoryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	historyEntities := make([]entities.StatusHistoryEntry, 0, len(history))
	for _, h := range history {
		historyEntities = append(historyEntities, entities.StatusHistoryEntry{
			Status:    entities.DeliveryStatusType(h.Status),
			Timestamp: h.CreatedAt,
			Note:      h.Note,
		})
	}

	return &entities.Delivery{
		ID:               d.ID,
		OrderID:          d.OrderID,
		ClientID:         d.ClientID,
		Status:           entities.DeliveryStatusType(d.Status),
		StatusHistory:    historyEntities,
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

func FromDomain(d *entities.Delivery) *DeliveryDB {
	if d == nil {
		return nil
	}
	return &DeliveryDB{
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
