package notification

import (
	"context"

	"github.com/Dannyjar1/AgriConnect-sub000/internal/domain"
)

// Confirmation is the order-confirmation payload sent to the customer.
type Confirmation struct {
	Recipient         string              `json:"recipient"`
	OrderID           string              `json:"order_id"`
	Items             []domain.CartItem   `json:"items"`
	Totals            domain.CartSummary  `json:"totals"`
	ShippingAddress   domain.ShippingInfo `json:"shipping_address"`
	TrackingNumber    string              `json:"tracking_number"`
	EstimatedDelivery string              `json:"estimated_delivery"`
}

type Receipt struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id"`
}

// Notifier sends order confirmations. Callers in the placement pipeline treat
// failures as non-fatal: a lost confirmation never fails a placed order.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, confirmation Confirmation) (Receipt, error)
}
