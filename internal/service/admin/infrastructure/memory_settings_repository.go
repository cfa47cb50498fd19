// internal/service/admin/infrastructure/memory_settings_repository.go
package infrastructure

import (
	"context"
	"sync"

	"sebshop/internal/service/admin/domain"
)

// MemorySettingsRepository 是 SettingsRepository 的进程内实现，测试用。
type MemorySettingsRepository struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewMemorySettingsRepository 创建一个零值的内存设置仓储。
func NewMemorySettingsRepository() *MemorySettingsRepository {
	return &MemorySettingsRepository{}
}

func (r *MemorySettingsRepository) Load(ctx context.Context) (*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.settings
	return &s, nil
}

func (r *MemorySettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	r.mu.Lock()
	r.settings = *settings
	r.mu.Unlock()
	return nil
}
