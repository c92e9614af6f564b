package status_metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

var deliveriesByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "backoffice_deliveries_by_status",
		Help: "Current number of deliveries in each status.",
	},
	[]string{"status"},
)

type Service interface {
	DeliveryStatusCounts(ctx context.Context) (map[entities.DeliveryStatusType]int64, error)
}

type StatusMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStatusMetrics(log logger.Logger, service Service, interval time.Duration) *StatusMetrics {
	return &StatusMetrics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StatusMetrics) TTL() time.Duration {
	return s.interval
}

func (s *StatusMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	counts, err := s.service.DeliveryStatusCounts(ctxWithTimeout)
	if err != nil {
		return err
	}

	// обнуляем, чтобы статусы без доставок не застревали на старом значении
	deliveriesByStatus.Reset()
	for status, count := range counts {
		deliveriesByStatus.WithLabelValues(status.String()).Set(float64(count))
	}

	return nil
}

func (s *StatusMetrics) Info() string {
	return "delivery status metrics"
}
