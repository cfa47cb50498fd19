// internal/service/pricing/calculator.go
package pricing

import cartdomain "sebshop/internal/service/cart/domain"

// ShippingMethod 是结账页可选的配送方式。
type ShippingMethod string

const (
	MethodStandard ShippingMethod = "standard"
	MethodExpress  ShippingMethod = "express"
	MethodNextDay  ShippingMethod = "next-day"
)

// 英国增值税，全品类统一税率。
const TaxRate = 0.20

// 购物车页的包邮门槛与固定运费（只在非结账的汇总视图里生效）。
const (
	freeShippingThreshold = 50.0
	summaryFlatRate       = 5.99
)

// Breakdown 是一次报价的完整拆解。
// 它是纯派生数据，从不落库，每次需要时都基于当前购物车重新计算。
type Breakdown struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
}

// ShippingRate 返回结账页的固定费率表。
// 未选择或无法识别的方式一律按 standard 计费。
func ShippingRate(method ShippingMethod) float64 {
	switch method {
	case MethodExpress:
		return 12.99
	case MethodNextDay:
		return 19.99
	case MethodStandard:
		return 5.99
	default:
		return 5.99
	}
}

// SummaryShippingRate 是购物车汇总视图的运费规则：满 50 包邮，否则固定 5.99。
// 注意：这与结账页的费率表是两套有意分开的策略，历史行为如此，不要合并。
func SummaryShippingRate(subtotal float64) float64 {
	if subtotal > freeShippingThreshold {
		return 0
	}
	return summaryFlatRate
}

func subtotalOf(items []cartdomain.LineItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	return subtotal
}

// Quote 按结账页规则计算报价。
// 内部保留 float64 全精度，只在展示层做两位小数的舍入，
// 避免反复重算时累积舍入误差。
func Quote(items []cartdomain.LineItem, method ShippingMethod) Breakdown {
	subtotal := subtotalOf(items)
	shipping := ShippingRate(method)
	tax := subtotal * TaxRate
	return Breakdown{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        subtotal + shipping + tax,
	}
}

// SummaryQuote 按购物车汇总视图的规则计算报价。
func SummaryQuote(items []cartdomain.LineItem) Breakdown {
	subtotal := subtotalOf(items)
	shipping := SummaryShippingRate(subtotal)
	tax := subtotal * TaxRate
	return Breakdown{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        subtotal + shipping + tax,
	}
}
