// internal/service/checkout/domain/tracking.go
package domain

import (
	"fmt"
	"math/rand"
	"time"
)

const trackingPrefix = "SK"

// NewTrackingNumber 生成一个追踪号：前缀 + 毫秒时间戳的后 8 位 + 4 位零填充随机数。
// 唯一性是尽力而为的，不做保证；在这个量级下碰撞是可接受的风险。
func NewTrackingNumber(now time.Time) string {
	ts := fmt.Sprintf("%d", now.UnixMilli())
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}
	return fmt.Sprintf("%s%s%04d", trackingPrefix, ts, rand.Intn(10000))
}
