package checkout

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Dannyjar1/AgriConnect-sub000/internal/domain"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/repository"
	"github.com/google/uuid"
)

// orderDocument is the persisted shape of an order. CreatedAt is written as a
// pending server timestamp; it becomes a concrete instant at the persistence
// boundary and is resolved before the record leaves this package.
type orderDocument struct {
	OrderID           string               `json:"order_id" bson:"order_id"`
	UserID            string               `json:"user_id" bson:"user_id"`
	Status            domain.OrderStatus   `json:"status" bson:"status"`
	TrackingNumber    string               `json:"tracking_number" bson:"tracking_number"`
	EstimatedDelivery time.Time            `json:"estimated_delivery" bson:"estimated_delivery"`
	Items             []domain.CartItem    `json:"items" bson:"items"`
	Summary           domain.CartSummary   `json:"summary" bson:"summary"`
	Customer          domain.ShippingInfo  `json:"customer" bson:"customer"`
	PaymentMethod     domain.PaymentMethod `json:"payment_method" bson:"payment_method"`
	CreatedAt         domain.ServerTime    `json:"created_at" bson:"created_at"`
}

// deliveryLeadDays maps a province to its delivery lead time in days. The
// table is deliberately short; everything not listed uses the fallback.
var deliveryLeadDays = map[string]int{
	"pichincha": 2,
	"guayas":    3,
	"azuay":     3,
}

const defaultLeadDays = 4

// persistOrder builds the full order record and writes it durably. Any error
// here is fatal to the placement attempt: the cart and the history cache
// remain untouched so the user can safely retry.
func (c *Coordinator) persistOrder(ctx context.Context, userID string, req *domain.OrderRequest) (*domain.OrderRecord, error) {
	now := time.Now()
	orderID := generateOrderID(now)

	doc := orderDocument{
		OrderID:           orderID,
		UserID:            userID,
		Status:            domain.OrderStatusConfirmed,
		TrackingNumber:    trackingNumberFor(orderID),
		EstimatedDelivery: estimateDelivery(req.Shipping.Province, now),
		Items:             req.Cart.Items,
		Summary:           req.Summary,
		Customer:          req.Shipping,
		PaymentMethod:     req.Payment.Method,
		CreatedAt:         domain.PendingServerTime(),
	}

	internalID, err := c.persistence.Create(ctx, repository.OrdersCollection, doc)
	if err != nil {
		return nil, err
	}

	// Attach the backend-generated id onto the record itself.
	err = c.persistence.Update(ctx, repository.OrdersCollection, internalID, map[string]interface{}{
		"internal_id": internalID,
	})
	if err != nil {
		return nil, err
	}

	return &domain.OrderRecord{
		OrderID:           doc.OrderID,
		InternalID:        internalID,
		Status:            doc.Status,
		TrackingNumber:    doc.TrackingNumber,
		EstimatedDelivery: doc.EstimatedDelivery,
		Items:             doc.Items,
		Summary:           doc.Summary,
		Customer:          doc.Customer,
		PaymentMethod:     doc.PaymentMethod,
		CreatedAt:         doc.CreatedAt.Resolve(time.Now()),
	}, nil
}

// generateOrderID builds a client-side unique order id: base36 timestamp plus
// a random suffix, upper-cased.
func generateOrderID(now time.Time) string {
	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return "ORD-" + stamp + "-" + suffix
}

// trackingNumberFor derives the tracking number from the last 8 characters of
// the order id.
func trackingNumberFor(orderID string) string {
	return "TRK-" + orderID[len(orderID)-8:]
}

func estimateDelivery(province string, now time.Time) time.Time {
	days, ok := deliveryLeadDays[strings.ToLower(strings.TrimSpace(province))]
	if !ok {
		days = defaultLeadDays
	}
	return now.AddDate(0, 0, days)
}
