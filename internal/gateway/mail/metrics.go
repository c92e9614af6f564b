package mail

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MailSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mail_send_duration_seconds",
			Help:    "Duration of SMTP send attempts including retries",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"outcome"},
	)

	MailRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mail_retries_total",
			Help: "Total number of SMTP send retry attempts",
		},
	)
)
