package checkout

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Dannyjar1/AgriConnect-sub000/internal/cart"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/domain"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/notification"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/ordercache"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/pricing"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/repository"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/validation"
)

// PlacementResult is returned to the caller after a successful placement.
type PlacementResult struct {
	OrderID           string
	TrackingNumber    string
	EstimatedDelivery time.Time
}

// Coordinator drives an order placement through its steps: validate, persist,
// notify, cache, clear. Persistence failures abort the placement; failures
// after the durable write are logged and swallowed, because the order already
// exists and the user must still get their confirmation screen.
type Coordinator struct {
	cart        *cart.Store
	persistence repository.Persistence
	notifier    notification.Notifier
	history     *ordercache.History

	mu     sync.Mutex
	status domain.PlacementStatus
}

func NewCoordinator(
	cartStore *cart.Store,
	persistence repository.Persistence,
	notifier notification.Notifier,
	history *ordercache.History,
) *Coordinator {
	return &Coordinator{
		cart:        cartStore,
		persistence: persistence,
		notifier:    notifier,
		history:     history,
		status:      domain.PlacementStatusIdle,
	}
}

// Status returns the current placement status.
func (c *Coordinator) Status() domain.PlacementStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// begin moves the machine into VALIDATING, rejecting a second placement while
// one is still in flight. A double-click must never produce two orders.
func (c *Coordinator) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != domain.PlacementStatusIdle && !c.status.IsTerminal() {
		return ErrPlacementInProgress
	}
	c.status = domain.PlacementStatusValidating
	return nil
}

func (c *Coordinator) setStatus(to domain.PlacementStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !domain.CanTransitionTo(c.status, to) {
		log.Printf("checkout: illegal placement transition %s -> %s", c.status, to)
	}
	c.status = to
}

// PlaceOrder snapshots the cart, validates the checkout payload, and runs the
// placement steps strictly in sequence. The snapshot is taken once, so cart
// mutations after this point cannot affect the in-flight order.
func (c *Coordinator) PlaceOrder(
	ctx context.Context,
	userID string,
	shipping domain.ShippingInfo,
	payment domain.PaymentInfo,
) (*PlacementResult, error) {
	if err := c.begin(); err != nil {
		return nil, err
	}

	state := c.cart.CurrentState()
	req := domain.OrderRequest{
		Cart:     state,
		Shipping: shipping,
		Payment:  payment,
		Summary:  pricing.Summarize(state.Items),
	}

	if err := validation.ValidateOrder(&req); err != nil {
		c.setStatus(domain.PlacementStatusFailedValidation)
		return nil, err
	}

	c.setStatus(domain.PlacementStatusPersisting)
	record, err := c.persistOrder(ctx, userID, &req)
	if err != nil {
		c.setStatus(domain.PlacementStatusFailedPersistence)
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	c.setStatus(domain.PlacementStatusNotifying)
	c.sendConfirmation(ctx, record, &req)

	c.setStatus(domain.PlacementStatusCaching)
	if cacheErr := c.history.AppendFor(ctx, userID, *record); cacheErr != nil {
		log.Printf("checkout: failed to cache order %s: %v", record.OrderID, cacheErr)
	}

	c.setStatus(domain.PlacementStatusCleared)
	c.cart.Clear()

	c.setStatus(domain.PlacementStatusCompleted)
	return &PlacementResult{
		OrderID:           record.OrderID,
		TrackingNumber:    record.TrackingNumber,
		EstimatedDelivery: record.EstimatedDelivery,
	}, nil
}

// sendConfirmation notifies the customer. Errors are logged, never returned:
// the order is already durable.
func (c *Coordinator) sendConfirmation(ctx context.Context, record *domain.OrderRecord, req *domain.OrderRequest) {
	confirmation := notification.Confirmation{
		Recipient:         req.Shipping.Email,
		OrderID:           record.OrderID,
		Items:             record.Items,
		Totals:            record.Summary,
		ShippingAddress:   record.Customer,
		TrackingNumber:    record.TrackingNumber,
		EstimatedDelivery: record.EstimatedDelivery.Format("2006-01-02"),
	}

	receipt, err := c.notifier.SendOrderConfirmation(ctx, confirmation)
	if err != nil {
		log.Printf("checkout: confirmation for order %s failed: %v", record.OrderID, err)
		return
	}
	log.Printf("checkout: confirmation for order %s sent, message id = %s", record.OrderID, receipt.MessageID)
}
