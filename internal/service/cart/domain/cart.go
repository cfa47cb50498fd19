// internal/service/cart/domain/cart.go
package domain

// LineItem 是购物车中的一条商品行：同一商品的某个 (尺码, 颜色) 变体加数量。
// JSON 标签与存储格式一一对应，重载进程后必须能还原出完全相同的序列。
type LineItem struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Image     string  `json:"image"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Quantity  int     `json:"quantity"`
}

// ItemKey 是行条目的身份键：(商品, 尺码, 颜色) 相同的两次加购必须合并成一行。
type ItemKey struct {
	ProductID int64
	Size      string
	Color     string
}

// Key 返回该行的身份键。
func (li LineItem) Key() ItemKey {
	return ItemKey{ProductID: li.ProductID, Size: li.Size, Color: li.Color}
}

// Cart 是购物车聚合根，归属于一个浏览会话。
// Items 保持插入顺序（只影响展示，不影响正确性）。
type Cart struct {
	SessionID string     `json:"sessionId"`
	Items     []LineItem `json:"items"`
}

// NewCart 创建一个空购物车。
func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Items: []LineItem{}}
}

// Add 把一条商品行并入购物车。
// 数量缺失或非正时归一为 1；身份键已存在时累加数量，否则追加到末尾。
// 畸形输入一律容忍并归一，这里没有错误分支。
func (c *Cart) Add(item LineItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	key := item.Key()
	for i := range c.Items {
		if c.Items[i].Key() == key {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity 原地修改某行的数量；数量降到 0 或以下等价于删除该行。
// 其余行的顺序不受影响。
func (c *Cart) UpdateQuantity(key ItemKey, quantity int) {
	if quantity <= 0 {
		c.Remove(key)
		return
	}
	for i := range c.Items {
		if c.Items[i].Key() == key {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Remove 删除身份键对应的行；不存在时静默返回。
func (c *Cart) Remove(key ItemKey) {
	for i := range c.Items {
		if c.Items[i].Key() == key {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear 清空购物车，下单成功后调用。
func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

// Total 返回所有行的 单价×数量 之和，空车为 0。
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// ItemCount 返回数量总和（用于角标展示），注意区别于行数。
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty 判断购物车是否为空。
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Snapshot 返回所有行的深拷贝。
// 订单持有的是这份拷贝，之后对购物车的任何修改都不会影响已落库的订单。
func (c *Cart) Snapshot() []LineItem {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return items
}
