// internal/service/wishlist/domain/wishlist.go
package domain

import "context"

// Wishlist 是一个用户收藏的商品 ID 集合，保持加入顺序。
type Wishlist struct {
	UserID     string  `json:"userId"`
	ProductIDs []int64 `json:"productIds"`
}

// NewWishlist 创建一个空心愿单。
func NewWishlist(userID string) *Wishlist {
	return &Wishlist{UserID: userID, ProductIDs: []int64{}}
}

// Toggle 切换某个商品的收藏状态，返回切换后是否在心愿单中。
func (w *Wishlist) Toggle(productID int64) bool {
	for i, id := range w.ProductIDs {
		if id == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			return false
		}
	}
	w.ProductIDs = append(w.ProductIDs, productID)
	return true
}

// Contains 判断商品是否已收藏。
func (w *Wishlist) Contains(productID int64) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// WishlistRepository 定义了心愿单的持久化接口。
type WishlistRepository interface {
	// Load 取出心愿单；不存在时返回空心愿单。
	Load(ctx context.Context, userID string) (*Wishlist, error)

	// Save 整体覆盖保存心愿单。
	Save(ctx context.Context, wishlist *Wishlist) error
}
