// internal/service/cart/domain/repository.go
package domain

import "context"

// CartRepository 定义了购物车聚合的持久化接口。
// 位于领域层，由基础设施层实现。
type CartRepository interface {
	// Load 按会话 ID 取出购物车；不存在时返回一个空购物车而不是错误。
	Load(ctx context.Context, sessionID string) (*Cart, error)

	// Save 整体覆盖保存购物车。每次变更操作返回前都必须调用。
	Save(ctx context.Context, cart *Cart) error
}
