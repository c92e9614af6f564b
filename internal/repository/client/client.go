package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"backoffice/internal/entities"
	"backoffice/internal/service/notification"
)

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetClientByID(ctx context.Context, clientID string) (*entities.Client, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), created_at
		FROM clients
		WHERE id = $1
	`

	var clientModel ClientDB
	err := r.querier.QueryRow(ctx, query, clientID).Scan(
		&clientModel.ID,
		&clientModel.Name,
		&clientModel.Email,
		&clientModel.Phone,
		&clientModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrClientNotFound
		}
		return nil, fmt.Errorf("unexpected client repository get error: %w", err)
	}

	return ToDomain(&clientModel), nil
}
