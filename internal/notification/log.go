package notification

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// LogNotifier writes confirmations to the process log. It stands in for the
// real notification backend in development and single-process setups.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendOrderConfirmation(_ context.Context, confirmation Confirmation) (Receipt, error) {
	messageID := uuid.New().String()
	log.Printf("order confirmation for %s to %s (tracking %s, delivery %s)",
		confirmation.OrderID,
		confirmation.Recipient,
		confirmation.TrackingNumber,
		confirmation.EstimatedDelivery)
	return Receipt{Success: true, MessageID: messageID}, nil
}
