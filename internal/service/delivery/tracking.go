package delivery

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// newTrackingNumber генерирует номер формата DEL-YYYYMMDD-NNNN.
// Уникальность гарантирует БД, при коллизии генерируем заново.
func newTrackingNumber(now time.Time) string {
	return fmt.Sprintf("DEL-%s-%04d", now.UTC().Format("20060102"), rand.IntN(10000))
}
