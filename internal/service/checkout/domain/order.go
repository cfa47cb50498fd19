// internal/service/checkout/domain/order.go
package domain

import (
	"time"

	cartdomain "sebshop/internal/service/cart/domain"
)

// GuestUserID 是未登录用户下单时的归属标识。
const GuestUserID = "guest"

// Status 是订单的生命周期状态。
// 本服务只负责创建出 pending 状态的订单，后续流转由管理后台维护。
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// ShippingAddress 是结账表单里的收货信息，字段在进入本层之前已去除首尾空白。
type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
}

// Order 是下单瞬间对购物车与结账选择的不可变快照。
// Items 持有购物车行的深拷贝，与在线购物车没有任何共享；
// 创建之后除 Status 外不再修改任何字段。
type Order struct {
	ID             int64                 `json:"id"`
	UserID         string                `json:"userId"`
	Items          []cartdomain.LineItem `json:"items"`
	Shipping       ShippingAddress       `json:"shipping"`
	ShippingMethod string                `json:"shippingMethod"`
	PaymentMethod  string                `json:"paymentMethod"`
	Subtotal       float64               `json:"subtotal"`
	ShippingCost   float64               `json:"shippingCost"`
	Tax            float64               `json:"tax"`
	Total          float64               `json:"total"`
	Status         Status                `json:"status"`
	Date           time.Time             `json:"date"`
	TrackingNumber string                `json:"trackingNumber"`
}
