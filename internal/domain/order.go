package domain

import "time"

type OrderStatus string

const (
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
)

// OrderRecord is the durable result of a successful placement. Everything but
// Status is immutable once written; Status is advanced by fulfillment later.
type OrderRecord struct {
	OrderID           string        `json:"order_id" bson:"order_id"`
	InternalID        string        `json:"internal_id,omitempty" bson:"internal_id,omitempty"`
	Status            OrderStatus   `json:"status" bson:"status"`
	TrackingNumber    string        `json:"tracking_number" bson:"tracking_number"`
	EstimatedDelivery time.Time     `json:"estimated_delivery" bson:"estimated_delivery"`
	Items             []CartItem    `json:"items" bson:"items"`
	Summary           CartSummary   `json:"summary" bson:"summary"`
	Customer          ShippingInfo  `json:"customer" bson:"customer"`
	PaymentMethod     PaymentMethod `json:"payment_method" bson:"payment_method"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at"`
}

// PlacementStatus tracks an order placement through the coordinator.
type PlacementStatus string

const (
	PlacementStatusIdle              PlacementStatus = "IDLE"
	PlacementStatusValidating        PlacementStatus = "VALIDATING"
	PlacementStatusPersisting        PlacementStatus = "PERSISTING"
	PlacementStatusNotifying         PlacementStatus = "NOTIFYING"
	PlacementStatusCaching           PlacementStatus = "CACHING"
	PlacementStatusCleared           PlacementStatus = "CLEARED"
	PlacementStatusCompleted         PlacementStatus = "COMPLETED"
	PlacementStatusFailedValidation  PlacementStatus = "FAILED_VALIDATION"
	PlacementStatusFailedPersistence PlacementStatus = "FAILED_PERSISTENCE"
)

func (s PlacementStatus) IsTerminal() bool {
	return s == PlacementStatusCompleted ||
		s == PlacementStatusFailedValidation ||
		s == PlacementStatusFailedPersistence
}

// String representation (for logging)
func (s PlacementStatus) String() string {
	return string(s)
}

// placementTransitions holds the legal next statuses for each status.
// Notification and caching never fail the placement, so there is no failure
// exit past PERSISTING.
var placementTransitions = map[PlacementStatus][]PlacementStatus{
	PlacementStatusIdle:       {PlacementStatusValidating},
	PlacementStatusValidating: {PlacementStatusPersisting, PlacementStatusFailedValidation},
	PlacementStatusPersisting: {PlacementStatusNotifying, PlacementStatusFailedPersistence},
	PlacementStatusNotifying:  {PlacementStatusCaching},
	PlacementStatusCaching:    {PlacementStatusCleared},
	PlacementStatusCleared:    {PlacementStatusCompleted},
	// Terminal statuses may re-enter VALIDATING for the next placement.
	PlacementStatusCompleted:         {PlacementStatusValidating},
	PlacementStatusFailedValidation:  {PlacementStatusValidating},
	PlacementStatusFailedPersistence: {PlacementStatusValidating},
}

// CanTransitionTo reports whether a placement may move from one status to
// another.
func CanTransitionTo(from, to PlacementStatus) bool {
	for _, next := range placementTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
