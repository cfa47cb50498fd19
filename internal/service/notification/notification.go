// internal/service/notification/notification.go
package notification

import "context"

// Event 是推送给用户的一条瞬时通知（加购成功、下单成功等）。
// 通知是尽力而为的：发送失败只记日志，绝不影响主流程。
type Event struct {
	UserID  string `json:"userID"`
	Message string `json:"message"`
}

// Producer 是通知的出站端口，由消息队列适配器实现。
type Producer interface {
	Send(ctx context.Context, event Event) error
}

// Nop 是一个丢弃所有通知的实现，测试和本地裸跑时使用。
type Nop struct{}

func (Nop) Send(ctx context.Context, event Event) error { return nil }
