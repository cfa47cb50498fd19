// internal/service/checkout/application/dto.go
package application

import (
	"sebshop/internal/service/checkout/domain"
	"sebshop/internal/service/pricing"
)

// PlaceOrderRequest 是下单用例的输入：表单原始值，已在接口层去除首尾空白。
type PlaceOrderRequest struct {
	Shipping       domain.ShippingAddress `json:"shipping"`
	ShippingMethod pricing.ShippingMethod `json:"shippingMethod"`
	PaymentMethod  string                 `json:"paymentMethod"`
	Card           domain.CardDetails     `json:"card"`
}

// PlaceOrderResponse 是下单用例的输出。
type PlaceOrderResponse struct {
	OrderID        int64         `json:"orderId"`
	TrackingNumber string        `json:"trackingNumber"`
	Status         domain.Status `json:"status"`
	Total          float64       `json:"total"`
}

// ToResponse 从订单实体构造响应 DTO。
func ToResponse(order *domain.Order) *PlaceOrderResponse {
	return &PlaceOrderResponse{
		OrderID:        order.ID,
		TrackingNumber: order.TrackingNumber,
		Status:         order.Status,
		Total:          order.Total,
	}
}
