// internal/pkg/redis/client.go
package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Client 对 go-redis 做一层薄封装。
// 店铺的所有持久化状态（购物车、订单、心愿单、用户、会话、设置）都挂在
// 这个共享的 KV 存储上，键名统一使用 "sebshop:" 前缀。
type Client struct {
	rdb *goredis.Client
}

// NewClient 创建并连通一个 Redis 客户端。
func NewClient(addr string) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Client{rdb: rdb}, nil
}

// GetClient 暴露底层客户端，供仓储实现使用 pipeline 等高级能力。
func (c *Client) GetClient() *goredis.Client {
	return c.rdb
}

// Close 释放连接池。
func (c *Client) Close() error {
	return c.rdb.Close()
}
