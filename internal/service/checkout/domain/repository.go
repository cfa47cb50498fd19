// internal/service/checkout/domain/repository.go
package domain

import "context"

// OrderRepository 定义了订单列表的持久化接口。
// 对本服务来说它是只追加的：订单一旦写入就不再改动。
type OrderRepository interface {
	// Append 把一个新订单追加到订单列表末尾。
	Append(ctx context.Context, order *Order) error

	// FindAll 按写入顺序返回全部订单。
	FindAll(ctx context.Context) ([]Order, error)

	// FindByUser 返回某个用户的全部订单（"我的订单"页面）。
	FindByUser(ctx context.Context, userID string) ([]Order, error)
}

// AddressRepository 保存已登录用户最近一次使用的收货地址，用于结账页自动填充。
type AddressRepository interface {
	Save(ctx context.Context, userID string, address *ShippingAddress) error

	// Load 返回保存过的地址；没有时返回 (nil, nil)。
	Load(ctx context.Context, userID string) (*ShippingAddress, error)
}
