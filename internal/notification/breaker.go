package notification

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerNotifier wraps a Notifier with a circuit breaker so a struggling
// notification backend sheds load fast instead of delaying every placement.
type BreakerNotifier struct {
	next Notifier
	cb   *gobreaker.CircuitBreaker[Receipt]
}

func NewBreakerNotifier(next Notifier) *BreakerNotifier {
	settings := gobreaker.Settings{
		Name:    "order-confirmations",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &BreakerNotifier{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[Receipt](settings),
	}
}

func (b *BreakerNotifier) SendOrderConfirmation(ctx context.Context, confirmation Confirmation) (Receipt, error) {
	return b.cb.Execute(func() (Receipt, error) {
		return b.next.SendOrderConfirmation(ctx, confirmation)
	})
}
