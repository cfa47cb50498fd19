// internal/pkg/bootstrap/config_test.go
package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestApplyDefaultsFillsMissingValues(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	assert.Equal(t, "localhost:6379", cfg.Infra.Redis.Addr)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Infra.Kafka.Brokers)
	assert.Equal(t, "notifications", cfg.Infra.Kafka.NotificationTopic)
	require.NotNil(t, cfg.App.Checkout.ProcessingDelayMs)
	assert.Equal(t, 2000, *cfg.App.Checkout.ProcessingDelayMs)
}

func TestApplyDefaultsKeepsExplicitZeroDelay(t *testing.T) {
	// 显式配置为 0 表示关闭延迟，不能被默认值覆盖
	raw := []byte("app:\n  checkout:\n    processingDelayMs: 0\n")
	var cfg Config
	require.NoError(t, yaml.Unmarshal(raw, &cfg))

	applyDefaults(&cfg)
	require.NotNil(t, cfg.App.Checkout.ProcessingDelayMs)
	assert.Equal(t, 0, *cfg.App.Checkout.ProcessingDelayMs)
}

func TestApplyDefaultsKeepsConfiguredValues(t *testing.T) {
	raw := []byte("infra:\n  redis:\n    addr: \"redis:6380\"\napp:\n  checkout:\n    processingDelayMs: 500\n")
	var cfg Config
	require.NoError(t, yaml.Unmarshal(raw, &cfg))

	applyDefaults(&cfg)
	assert.Equal(t, "redis:6380", cfg.Infra.Redis.Addr)
	assert.Equal(t, 500, *cfg.App.Checkout.ProcessingDelayMs)
}
