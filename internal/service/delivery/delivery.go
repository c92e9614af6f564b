package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

// createTrackingAttempts - количество попыток на случай коллизии
// четырёхзначного суффикса трекинг-номера в пределах одного дня.
const createTrackingAttempts = 3

const createdNote = "Delivery created"

type Delivery struct {
	repository   Repository
	orderGateway OrderGateway
	notifier     Notifier
	events       EventPublisher
	txManager    TxManager
	log          serviceLogger
}

func New(
	log serviceLogger,
	repository Repository,
	orderGateway OrderGateway,
	notifier Notifier,
	events EventPublisher,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:   repository,
		orderGateway: orderGateway,
		notifier:     notifier,
		events:       events,
		txManager:    txManager,
		log:          log,
	}
}

// CreateDelivery создает доставку для подтвержденного заказа в начальном
// статусе pending (или явно заданном). История статусов стартует ровно
// с одной записи, трекинг-номер генерируется если не передан.
func (d *Delivery) CreateDelivery(ctx context.Context, deliveryCreate entities.DeliveryCreate) (*entities.Delivery, error) {
	if !isValidOrderID(deliveryCreate.OrderID) {
		return nil, ErrInvalidOrderID
	}

	initialStatus := entities.DefaultDeliveryStatus
	if deliveryCreate.Status != nil {
		if !isKnownStatus(*deliveryCreate.Status) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, *deliveryCreate.Status)
		}
		initialStatus = *deliveryCreate.Status
	}

	var created *entities.Delivery
	var err error
	for attempt := 0; attempt < createTrackingAttempts; attempt++ {
		created, err = d.internalCreate(ctx, deliveryCreate, initialStatus)
		if errors.Is(err, ErrTrackingNumberTaken) && deliveryCreate.TrackingNumber == nil {
			continue
		}
		break
	}
	if err != nil {
		return nil, err
	}

	d.dispatchSideEffects(ctx, created, initialStatus, createdNote, true)
	return created, nil
}

func (d *Delivery) internalCreate(ctx context.Context, deliveryCreate entities.DeliveryCreate, initialStatus entities.DeliveryStatusType) (*entities.Delivery, error) {
	now := time.Now().UTC()

	trackingNumber := newTrackingNumber(now)
	if deliveryCreate.TrackingNumber != nil && *deliveryCreate.TrackingNumber != "" {
		trackingNumber = *deliveryCreate.TrackingNumber
	}

	var created *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orderGateway.GetOrderByID(ctx, deliveryCreate.OrderID)
		if err != nil {
			return fmt.Errorf("lookup order %s: %w", deliveryCreate.OrderID, err)
		}

		_, err = d.repository.GetByOrderID(ctx, deliveryCreate.OrderID)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", ErrDeliveryExists, deliveryCreate.OrderID)
		case !errors.Is(err, ErrDeliveryNotFound):
			return fmt.Errorf("lookup existing delivery: %w", err)
		}

		deliveryEntity := entities.Delivery{
			ID:             uuid.NewString(),
			OrderID:        order.ID,
			ClientID:       order.ClientID,
			Status:         initialStatus,
			TrackingNumber: trackingNumber,
			StatusHistory: []entities.StatusHistoryEntry{
				{Status: initialStatus, Timestamp: now, Note: createdNote},
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if deliveryCreate.ScheduledDate != nil {
			deliveryEntity.ScheduledDate = deliveryCreate.ScheduledDate
		}
		if deliveryCreate.DeliveryFee != nil {
			deliveryEntity.DeliveryFee = *deliveryCreate.DeliveryFee
		}
		if deliveryCreate.RecipientName != nil {
			deliveryEntity.RecipientName = *deliveryCreate.RecipientName
		}
		if deliveryCreate.RecipientPhone != nil {
			deliveryEntity.RecipientPhone = *deliveryCreate.RecipientPhone
		}
		if deliveryCreate.DeliveryLocation != nil {
			deliveryEntity.DeliveryLocation = *deliveryCreate.DeliveryLocation
		}

		created, err = d.repository.Create(ctx, deliveryEntity)
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateDeliveryStatus - основная операция workflow: атомарно переводит
// доставку в новый статус, дописывая ровно одну запись истории.
// Нелегальный переход отклоняется до любой мутации, уведомление и событие
// идут после коммита и не могут откатить переход.
func (d *Delivery) UpdateDeliveryStatus(ctx context.Context, deliveryID string, newStatus entities.DeliveryStatusType, note string) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isKnownStatus(newStatus) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, newStatus)
	}

	if note == "" {
		note = fmt.Sprintf("Status updated to %s", newStatus)
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("load delivery %s: %w", deliveryID, err)
		}

		if err := ValidateStatusTransition(current.Status, newStatus); err != nil {
			return err
		}

		entry := entities.StatusHistoryEntry{
			Status:    newStatus,
			Timestamp: time.Now().UTC(),
			Note:      note,
		}

		// Запись условная: WHERE status = прочитанный. Конкурирующий переход,
		// успевший первым, оставляет этому нулю строк и ErrTransitionConflict.
		updated, err = d.repository.UpdateStatus(ctx, deliveryID, current.Status, entry)
		if err != nil {
			return fmt.Errorf("apply transition %s -> %s: %w", current.Status, newStatus, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.dispatchSideEffects(ctx, updated, newStatus, note, false)
	return updated, nil
}

// CancelDeliveryByOrderID переводит доставку заказа в cancelled.
// Используется обработчиком событий отмены заказа.
func (d *Delivery) CancelDeliveryByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	deliveryEntity, err := d.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("lookup delivery for order %s: %w", orderID, err)
	}

	return d.UpdateDeliveryStatus(ctx, deliveryEntity.ID, entities.DeliveryCancelled, "Order cancelled")
}

// UpdateDeliveryDetails меняет только описательные поля, статус и история
// недостижимы из этой операции.
func (d *Delivery) UpdateDeliveryDetails(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryModify.ID) {
		return nil, ErrInvalidDeliveryID
	}
	if deliveryModify.ScheduledDate == nil &&
		deliveryModify.DeliveryFee == nil &&
		deliveryModify.RecipientName == nil &&
		deliveryModify.RecipientPhone == nil &&
		deliveryModify.DeliveryLocation == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	updated, err := d.repository.UpdateDetails(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("update delivery details: %w", err)
	}
	return updated, nil
}

func (d *Delivery) GetDelivery(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	deliveryEntity, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return deliveryEntity, nil
}

func (d *Delivery) GetDeliveryByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	deliveryEntity, err := d.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get delivery by order: %w", err)
	}
	return deliveryEntity, nil
}

func (d *Delivery) ListDeliveries(ctx context.Context) ([]entities.Delivery, error) {
	deliveries, err := d.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

func (d *Delivery) DeliveryStatusCounts(ctx context.Context) (map[entities.DeliveryStatusType]int64, error) {
	counts, err := d.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count deliveries by status: %w", err)
	}
	return counts, nil
}

// dispatchSideEffects - best-effort шаги после коммита: письмо клиенту и
// доменное событие. Их ошибки логируются и никогда не всплывают наружу.
func (d *Delivery) dispatchSideEffects(ctx context.Context, deliveryEntity *entities.Delivery, status entities.DeliveryStatusType, note string, created bool) {
	sideLog := d.log.With(
		logger.NewField("delivery", deliveryEntity.ID),
		logger.NewField("status", status.String()),
	)

	if err := d.notifier.NotifyStatusChange(ctx, deliveryEntity, status); err != nil {
		sideLog.With(
			logger.NewField("error", err),
		).Warn("delivery notification failed")
	}

	var err error
	if created {
		err = d.events.DeliveryCreated(ctx, deliveryEntity)
	} else {
		err = d.events.DeliveryStatusUpdated(ctx, deliveryEntity, note)
	}
	if err != nil {
		sideLog.With(
			logger.NewField("error", err),
		).Warn("delivery event publish failed")
	}
}
