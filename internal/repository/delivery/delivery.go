package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, order_id, client_id, status, tracking_number, scheduled_date,
		delivery_fee, recipient_name, recipient_phone, delivery_location, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет доставку вместе с первой записью истории.
// Вызывается внутри транзакции менеджера, обе вставки атомарны.
func (r *Repository) Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	deliveryModel := FromDomain(&deliveryEntity)

	query := `
		INSERT INTO deliveries (id, order_id, client_id, status, tracking_number, scheduled_date,
			delivery_fee, recipient_name, recipient_phone, delivery_location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		deliveryModel.ID,
		deliveryModel.OrderID,
		deliveryModel.ClientID,
		deliveryModel.Status,
		deliveryModel.TrackingNumber,
		deliveryModel.ScheduledDate,
		deliveryModel.DeliveryFee,
		deliveryModel.RecipientName,
		deliveryModel.RecipientPhone,
		deliveryModel.DeliveryLocation,
		deliveryModel.CreatedAt,
		deliveryModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgUniqueViolation(err, "deliveries_order_id_key") {
			return nil, delivery.ErrDeliveryExists
		}
		if repository.IsPgUniqueViolation(err, "deliveries_tracking_number_key") {
			return nil, delivery.ErrTrackingNumberTaken
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	for _, entry := range deliveryEntity.StatusHistory {
		if err := r.appendHistory(ctx, deliveryEntity.ID, entry); err != nil {
			return nil, err
		}
	}

	return &deliveryEntity, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	query := fmt.Sprintf(`SELECT %s FROM deliveries WHERE id = $1`, deliveryColumns)
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error) {
	query := fmt.Sprintf(`SELECT %s FROM deliveries WHERE order_id = $1`, deliveryColumns)
	return r.getOne(ctx, query, orderID)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Delivery, error) {
	query := fmt.Sprintf(`SELECT %s FROM deliveries ORDER BY created_at, id`, deliveryColumns)

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}
	defer rows.Close()

	deliveryModels := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		var deliveryModel DeliveryDB
		if err := scanDelivery(rows, &deliveryModel); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
		}
		deliveryModels = append(deliveryModels, deliveryModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}

	historyByDelivery, err := r.getAllHistory(ctx)
	if err != nil {
		return nil, err
	}

	deliveries := make([]entities.Delivery, 0, len(deliveryModels))
	for i := range deliveryModels {
		deliveries = append(deliveries, *ToDomain(&deliveryModels[i], historyByDelivery[deliveryModels[i].ID]))
	}
	return deliveries, nil
}

// UpdateStatus - условная запись нового статуса: guard по прочитанному
// статусу гарантирует не больше одного перехода в полете на доставку.
// Запись истории дописывается той же транзакцией.
func (r *Repository) UpdateStatus(ctx context.Context, id string, current entities.DeliveryStatusType, entry entities.StatusHistoryEntry) (*entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.querier.Exec(ctx, query, entry.Status.String(), entry.Timestamp, id, current.String())
	if err != nil {
		// под serializable проигравшая из двух одновременных транзакций
		// получает 40001 на заблокированном UPDATE, а не ноль строк
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationError) {
			return nil, delivery.ErrTransitionConflict
		}
		return nil, fmt.Errorf("unexpected delivery repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		// guard не сработал: либо доставки нет, либо статус уже сменили
		_, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, delivery.ErrTransitionConflict
	}

	if err := r.appendHistory(ctx, id, entry); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) UpdateDetails(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	builder := qb.
		Update("deliveries")

	// опциональные поля
	if deliveryModify.ScheduledDate != nil {
		builder = builder.Set("scheduled_date", deliveryModify.ScheduledDate)
	}
	if deliveryModify.DeliveryFee != nil {
		builder = builder.Set("delivery_fee", deliveryModify.DeliveryFee)
	}
	if deliveryModify.RecipientName != nil {
		builder = builder.Set("recipient_name", deliveryModify.RecipientName)
	}
	if deliveryModify.RecipientPhone != nil {
		builder = builder.Set("recipient_phone", deliveryModify.RecipientPhone)
	}
	if deliveryModify.DeliveryLocation != nil {
		builder = builder.Set("delivery_location", deliveryModify.DeliveryLocation)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryModify.ID}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update details error: %w", err)
	}

	var deliveryModel DeliveryDB
	err = scanDelivery(r.querier.QueryRow(ctx, query, args...), &deliveryModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update details error: %w", err)
	}

	history, err := r.getHistory(ctx, deliveryModel.ID)
	if err != nil {
		return nil, err
	}
	return ToDomain(&deliveryModel, history), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.DeliveryStatusType]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM deliveries
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.DeliveryStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository count error: %w", err)
		}
		counts[entities.DeliveryStatusType(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}

	return counts, nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Delivery, error) {
	var deliveryModel DeliveryDB
	err := scanDelivery(r.querier.QueryRow(ctx, query, arg), &deliveryModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	history, err := r.getHistory(ctx, deliveryModel.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&deliveryModel, history), nil
}

func (r *Repository) appendHistory(ctx context.Context, deliveryID string, entry entities.StatusHistoryEntry) error {
	query := `
		INSERT INTO delivery_status_history (delivery_id, status, note, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.querier.Exec(ctx, query, deliveryID, entry.Status.String(), entry.Note, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository append history error: %w", err)
	}
	return nil
}

func (r *Repository) getHistory(ctx context.Context, deliveryID string) ([]StatusHistoryDB, error) {
	query := `
		SELECT delivery_id, status, note, created_at
		FROM delivery_status_history
		WHERE delivery_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get history error: %w", err)
	}
	defer rows.Close()

	return scanHistory(rows)
}

func (r *Repository) getAllHistory(ctx context.Context) (map[string][]StatusHistoryDB, error) {
	query := `
		SELECT delivery_id, status, note, created_at
		FROM delivery_status_history
		ORDER BY delivery_id, id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get history error: %w", err)
	}
	defer rows.Close()

	history, err := scanHistory(rows)
	if err != nil {
		return nil, err
	}

	byDelivery := make(map[string][]StatusHistoryDB)
	for _, h := range history {
		byDelivery[h.DeliveryID] = append(byDelivery[h.DeliveryID], h)
	}
	return byDelivery, nil
}

func scanHistory(rows pgx.Rows) ([]StatusHistoryDB, error) {
	history := make([]StatusHistoryDB, 0, 4)
	for rows.Next() {
		var h StatusHistoryDB
		if err := rows.Scan(&h.DeliveryID, &h.Status, &h.Note, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository scan history error: %w", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository scan history error: %w", err)
	}
	return history, nil
}

func scanDelivery(row pgx.Row, deliveryModel *DeliveryDB) error {
	return row.Scan(
		&deliveryModel.ID,
		&deliveryModel.OrderID,
		&deliveryModel.ClientID,
		&deliveryModel.Status,
		&deliveryModel.TrackingNumber,
		&deliveryModel.ScheduledDate,
		&deliveryModel.DeliveryFee,
		&deliveryModel.RecipientName,
		&deliveryModel.RecipientPhone,
		&deliveryModel.DeliveryLocation,
		&deliveryModel.CreatedAt,
		&deliveryModel.UpdatedAt,
	)
}
