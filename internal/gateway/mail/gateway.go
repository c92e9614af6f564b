package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
	"backoffice/internal/pkg/config"
	retrierconfig "backoffice/pkg/retrier"
	"backoffice/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// Gateway шлёт письма через SMTP. Уведомления best-effort, поэтому
// ретраи короткие: не держим переход статуса дольше необходимого.
type Gateway struct {
	client  *gomail.Client
	from    string
	retrier retrier
}

func New(cfg *config.SMTP) (*Gateway, error) {
	client, err := gomail.NewClient(
		cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	return &Gateway{
		client:  client,
		from:    cfg.From,
		retrier: backoff_adapter.New(retryConfig),
	}, nil
}

func (g *Gateway) SendEmail(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(g.from); err != nil {
		return fmt.Errorf("mail from %s: %w", g.from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to %s: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return g.client.DialAndSendWithContext(ctx, msg)
	})

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	MailSendDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		MailRetriesTotal.Add(float64(attempt - 1))
	}

	if err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
