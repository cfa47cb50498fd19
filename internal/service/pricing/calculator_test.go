// internal/service/pricing/calculator_test.go
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cartdomain "sebshop/internal/service/cart/domain"
)

func TestShippingRateTable(t *testing.T) {
	assert.InDelta(t, 5.99, ShippingRate(MethodStandard), 1e-9)
	assert.InDelta(t, 12.99, ShippingRate(MethodExpress), 1e-9)
	assert.InDelta(t, 19.99, ShippingRate(MethodNextDay), 1e-9)
	// 未知或缺省的方式按 standard 计费
	assert.InDelta(t, 5.99, ShippingRate(""), 1e-9)
	assert.InDelta(t, 5.99, ShippingRate("drone"), 1e-9)
}

func TestQuoteStandardShipping(t *testing.T) {
	items := []cartdomain.LineItem{{ProductID: 1, UnitPrice: 25.0, Quantity: 1}}

	got := Quote(items, MethodStandard)
	assert.InDelta(t, 25.00, got.Subtotal, 1e-9)
	assert.InDelta(t, 5.99, got.ShippingCost, 1e-9)
	assert.InDelta(t, 5.00, got.Tax, 1e-9)
	assert.InDelta(t, 35.99, got.Total, 1e-9)
}

func TestQuoteExpressShipping(t *testing.T) {
	items := []cartdomain.LineItem{{ProductID: 1, UnitPrice: 25.0, Quantity: 1}}

	got := Quote(items, MethodExpress)
	assert.InDelta(t, 42.99, got.Total, 1e-9)
}

func TestQuoteEmptyCart(t *testing.T) {
	got := Quote(nil, MethodStandard)
	assert.InDelta(t, 0, got.Subtotal, 1e-9)
	assert.InDelta(t, 5.99, got.ShippingCost, 1e-9)
	assert.InDelta(t, 5.99, got.Total, 1e-9)
}

func TestSummaryShippingFreeAboveThreshold(t *testing.T) {
	// 门槛是严格大于 50
	assert.InDelta(t, 5.99, SummaryShippingRate(50.0), 1e-9)
	assert.InDelta(t, 0, SummaryShippingRate(50.01), 1e-9)
}

func TestSummaryQuoteUsesFlatRatePolicy(t *testing.T) {
	cheap := []cartdomain.LineItem{{UnitPrice: 20.0, Quantity: 1}}
	got := SummaryQuote(cheap)
	assert.InDelta(t, 5.99, got.ShippingCost, 1e-9)
	assert.InDelta(t, 29.99, got.Total, 1e-9)

	bulky := []cartdomain.LineItem{{UnitPrice: 30.0, Quantity: 2}}
	got = SummaryQuote(bulky)
	assert.InDelta(t, 0, got.ShippingCost, 1e-9)
	assert.InDelta(t, 72.0, got.Total, 1e-9)
}
