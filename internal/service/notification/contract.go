//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

type OrderGateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type ClientGateway interface {
	GetClientByID(ctx context.Context, clientID string) (*entities.Client, error)
}

type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
