package pricing

import (
	"testing"

	"github.com/Dannyjar1/AgriConnect-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyCart(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.Subtotal)
	assert.Zero(t, summary.Tax)
	assert.Equal(t, FlatShippingFee, summary.Shipping)
	assert.Zero(t, summary.ItemCount)
}

func TestSummarize_SmallOrderPaysShipping(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "p1", UnitPrice: 1.25, Quantity: 2},
	}

	summary := Summarize(items)

	assert.InDelta(t, 2.50, summary.Subtotal, 0.001)
	assert.InDelta(t, 0.30, summary.Tax, 0.001)
	assert.InDelta(t, 3.50, summary.Shipping, 0.001)
	assert.InDelta(t, 6.30, summary.Total, 0.001)
	assert.Equal(t, 2, summary.ItemCount)
}

func TestSummarize_LargeOrderShipsFree(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "p1", UnitPrice: 15.00, Quantity: 2},
	}

	summary := Summarize(items)

	assert.InDelta(t, 30.00, summary.Subtotal, 0.001)
	assert.InDelta(t, 3.60, summary.Tax, 0.001)
	assert.Zero(t, summary.Shipping)
	assert.InDelta(t, 33.60, summary.Total, 0.001)
	assert.Equal(t, 2, summary.ItemCount)
}

func TestSummarize_ShippingThreshold(t *testing.T) {
	below := Summarize([]domain.CartItem{{ProductID: "p1", UnitPrice: 24.99, Quantity: 1}})
	atThreshold := Summarize([]domain.CartItem{{ProductID: "p1", UnitPrice: 25.00, Quantity: 1}})

	assert.InDelta(t, 3.50, below.Shipping, 0.001)
	assert.Zero(t, atThreshold.Shipping)
}

func TestSummarize_MultipleItems(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "p1", UnitPrice: 2.00, Quantity: 3},
		{ProductID: "p2", UnitPrice: 0.75, Quantity: 4},
	}

	summary := Summarize(items)

	assert.InDelta(t, 9.00, summary.Subtotal, 0.001)
	assert.Equal(t, 7, summary.ItemCount)
	assert.Equal(t, TaxRate, summary.TaxRate)
}
