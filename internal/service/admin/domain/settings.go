// internal/service/admin/domain/settings.go
package domain

import "context"

// Settings 是首页展示用的手工维护数字（订阅数、视频数等）。
type Settings struct {
	Subscribers int `json:"subscribers"`
	Videos      int `json:"videos"`
	Views       int `json:"views"`
	Orders      int `json:"orders"`
}

// SettingsRepository 定义了设置记录的持久化接口。
type SettingsRepository interface {
	// Load 返回当前设置；从未保存过时返回零值。
	Load(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, settings *Settings) error
}
