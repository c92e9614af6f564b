//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"backoffice/internal/gateway/kafka/events"
	mailGateway "backoffice/internal/gateway/mail"
	"backoffice/internal/handlers/rest/deliveries_get"
	"backoffice/internal/handlers/rest/delivery_get"
	"backoffice/internal/handlers/rest/delivery_post"
	"backoffice/internal/handlers/rest/delivery_put"
	"backoffice/internal/handlers/rest/delivery_status_put"
	"backoffice/internal/handlers/rest/order_delivery_get"
	"backoffice/internal/handlers/tasks/status_metrics"
	"backoffice/internal/pkg/config"
	"backoffice/internal/pkg/factory/order_handle"

	clientRepo "backoffice/internal/repository/client"
	deliveryRepo "backoffice/internal/repository/delivery"
	orderRepo "backoffice/internal/repository/order"
	deliveryService "backoffice/internal/service/delivery"
	notificationService "backoffice/internal/service/notification"
	orderService "backoffice/internal/service/order"

	"backoffice/pkg/background"
	"backoffice/pkg/logger"
	"backoffice/pkg/querier"
	"backoffice/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatusMetricsInterval time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_get.Service
	deliveries_get.Service
	delivery_put.Service
	delivery_status_put.Service
	order_delivery_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatusMetricsInterval,

		provideDeliveryRepository,
		provideOrderRepository,
		provideClientRepository,

		provideMailGateway,
		provideEventPublisher,

		provideServiceNotification,
		provideServiceDelivery,

		provideStatusMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.OrderGateway), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.Notifier), new(*notificationService.Notification)),
		wire.Bind(new(deliveryService.EventPublisher), new(*events.Publisher)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notificationService.OrderGateway), new(*orderRepo.Repository)),
		wire.Bind(new(notificationService.ClientGateway), new(*clientRepo.Repository)),
		wire.Bind(new(notificationService.Mailer), new(*mailGateway.Gateway)),

		wire.Bind(new(status_metrics.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDeliveryRepository,
		provideOrderRepository,
		provideClientRepository,

		provideMailGateway,
		provideEventPublisher,

		provideServiceNotification,
		provideServiceDelivery,

		provideStatusHandlerFactory,
		provideOrderService,

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.OrderGateway), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.Notifier), new(*notificationService.Notification)),
		wire.Bind(new(deliveryService.EventPublisher), new(*events.Publisher)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notificationService.OrderGateway), new(*orderRepo.Repository)),
		wire.Bind(new(notificationService.ClientGateway), new(*clientRepo.Repository)),
		wire.Bind(new(notificationService.Mailer), new(*mailGateway.Gateway)),

		wire.Bind(new(orderService.OrderGateway), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DeliveryService), new(*deliveryService.Delivery)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideClientRepository(querier *querier.Querier) *clientRepo.Repository {
	return clientRepo.New(querier)
}

func provideMailGateway(cfg *config.Config) (*mailGateway.Gateway, error) {
	return mailGateway.New(&cfg.SMTP)
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) *events.Publisher {
	return events.New(producer, cfg.Kafka.DeliveryEventsTopic)
}

func provideServiceNotification(
	log logger.Logger,
	orderGateway notificationService.OrderGateway,
	clientGateway notificationService.ClientGateway,
	mailer notificationService.Mailer,
) *notificationService.Notification {
	return notificationService.New(log, orderGateway, clientGateway, mailer)
}

func provideServiceDelivery(
	log logger.Logger,
	repository deliveryService.Repository,
	orderGateway deliveryService.OrderGateway,
	notifier deliveryService.Notifier,
	events deliveryService.EventPublisher,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		log,
		repository,
		orderGateway,
		notifier,
		events,
		txManager,
	)
}

func provideStatusMetricsInterval(cfg *config.Config) StatusMetricsInterval {
	return StatusMetricsInterval(cfg.Tasks.StatusMetricsInterval)
}

// provideOrderService создает orderService для обработки событий Kafka
func provideOrderService(
	orderGateway orderService.OrderGateway,
	handlerFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(orderGateway, handlerFactory)
}

func provideStatusHandlerFactory(deliveryService orderService.DeliveryService) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(deliveryService)
}

func provideStatusMetricsTask(
	log logger.Logger,
	deliveryService status_metrics.Service,
	interval StatusMetricsInterval,
) *status_metrics.StatusMetrics {
	return status_metrics.NewStatusMetrics(log, deliveryService, time.Duration(interval))
}

func provideTaskList(
	statusMetricsTask *status_metrics.StatusMetrics,
) []background.Task {
	return []background.Task{
		statusMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
