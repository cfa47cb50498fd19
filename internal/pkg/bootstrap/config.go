// internal/pkg/bootstrap/config.go
package bootstrap

import (
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"sebshop/internal/pkg/logger"
)

// Config 汇总了一个服务进程需要的全部配置。
// 结构上分为 Server（监听）、Infra（外部依赖）、App（业务开关）三段。
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Infra struct {
		Redis struct {
			Addr string `yaml:"addr"`
		} `yaml:"redis"`
		Mysql struct {
			DSN string `yaml:"dsn"`
		} `yaml:"mysql"`
		Kafka struct {
			Brokers           []string `yaml:"brokers"`
			NotificationTopic string   `yaml:"notificationTopic"`
		} `yaml:"kafka"`
		Jaeger struct {
			Endpoint string `yaml:"endpoint"`
		} `yaml:"jaeger"`
	} `yaml:"infra"`

	App struct {
		Checkout struct {
			// 模拟支付处理的固定延迟（毫秒），对应页面上的 "Processing..." 状态。
			// 指针用于区分 "未配置"（取默认值）和显式配置为 0（关闭延迟）。
			ProcessingDelayMs *int `yaml:"processingDelayMs"`
		} `yaml:"checkout"`
		Auth struct {
			// 是否在启动时写入演示用的管理员 / 顾客账号
			SeedAccounts bool `yaml:"seedAccounts"`
		} `yaml:"auth"`
	} `yaml:"app"`
}

// defaultProcessingDelayMs 是未配置时的模拟支付延迟。
const defaultProcessingDelayMs = 2000

var (
	currentConfig Config
	configOnce    sync.Once
)

// Init 加载配置文件并应用环境变量覆盖。必须在 StartService 之前调用。
func Init() {
	configOnce.Do(func() {
		path := getEnv("CONFIG_PATH", "configs/config.yaml")

		data, err := os.ReadFile(path)
		if err != nil {
			// 配置文件缺失不是致命错误，环境变量和默认值足够把演示环境跑起来
			logger.Logger.Warn().Err(err).Str("path", path).Msg("config file not found, falling back to defaults")
		} else if err := yaml.Unmarshal(data, &currentConfig); err != nil {
			logger.Logger.Fatal().Err(err).Str("path", path).Msg("invalid config file")
		}

		applyDefaults(&currentConfig)
		applyEnvOverrides(&currentConfig)
	})
}

// GetCurrentConfig 返回进程内的配置快照。
func GetCurrentConfig() *Config {
	return &currentConfig
}

func applyDefaults(c *Config) {
	if c.Infra.Redis.Addr == "" {
		c.Infra.Redis.Addr = "localhost:6379"
	}
	if len(c.Infra.Kafka.Brokers) == 0 {
		c.Infra.Kafka.Brokers = []string{"localhost:9092"}
	}
	if c.Infra.Kafka.NotificationTopic == "" {
		c.Infra.Kafka.NotificationTopic = "notifications"
	}
	if c.App.Checkout.ProcessingDelayMs == nil {
		delay := defaultProcessingDelayMs
		c.App.Checkout.ProcessingDelayMs = &delay
	}
}

func applyEnvOverrides(c *Config) {
	if v, ok := os.LookupEnv("REDIS_ADDR"); ok {
		c.Infra.Redis.Addr = v
	}
	if v, ok := os.LookupEnv("MYSQL_DSN"); ok {
		c.Infra.Mysql.DSN = v
	}
	if v, ok := os.LookupEnv("KAFKA_BROKERS"); ok {
		c.Infra.Kafka.Brokers = strings.Split(v, ",")
	}
	if v, ok := os.LookupEnv("JAEGER_ENDPOINT"); ok {
		c.Infra.Jaeger.Endpoint = v
	}
}

// getEnv 从环境变量中读取配置，不存在时返回默认值。
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
