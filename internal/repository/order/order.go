package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"backoffice/internal/entities"
	"backoffice/internal/service/delivery"
)

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository читает заказы бэк-офиса. Доставкам заказы нужны только
// для проверки существования и данных клиента, поэтому запись не нужна.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		SELECT id, order_number, client_id, status, created_at
		FROM orders
		WHERE id = $1
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderModel.ID,
		&orderModel.OrderNumber,
		&orderModel.ClientID,
		&orderModel.Status,
		&orderModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderModel), nil
}
