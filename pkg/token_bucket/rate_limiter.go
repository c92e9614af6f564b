package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket - классический token bucket: емкость ограничивает burst,
// refillRate (токенов в секунду) задает устоявшуюся пропускную способность.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	refilledAt time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		refilledAt: time.Now(),
	}
}

func (b *TokenBucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(time.Now())

	if b.tokens == 0 {
		return false
	}
	b.tokens--
	return true
}

// refill дописывает только целые токены: refilledAt сдвигается лишь когда
// что-то реально добавили, иначе дробный остаток терялся бы на каждом вызове.
func (b *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(b.refilledAt).Seconds()
	if elapsed <= 0 {
		return
	}

	earned := int(elapsed * b.refillRate)
	if earned == 0 {
		return
	}

	b.tokens += earned
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.refilledAt = now
}
