package pricing

import (
	"math"

	"github.com/Dannyjar1/AgriConnect-sub000/internal/domain"
)

const (
	// TaxRate is the flat IVA applied to every order.
	TaxRate = 0.12

	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = 25.0

	// FlatShippingFee is charged below the free-shipping threshold.
	FlatShippingFee = 3.50
)

// Summarize derives the pricing breakdown from the given items. It is pure
// and always recomputes from scratch, so it is safe to call on every read.
func Summarize(items []domain.CartItem) domain.CartSummary {
	var subtotal float64
	var count int
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
		count += item.Quantity
	}
	subtotal = roundCents(subtotal)

	tax := roundCents(subtotal * TaxRate)

	shipping := FlatShippingFee
	if subtotal >= FreeShippingThreshold {
		shipping = 0
	}

	return domain.CartSummary{
		Subtotal:  subtotal,
		TaxRate:   TaxRate,
		Tax:       tax,
		Shipping:  shipping,
		Total:     roundCents(subtotal + tax + shipping),
		ItemCount: count,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
