// cmd/shop-server/main.go
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"sebshop/internal/pkg/bootstrap"
	"sebshop/internal/pkg/logger"
	"sebshop/internal/pkg/mq"
	"sebshop/internal/pkg/redis"
	adminapp "sebshop/internal/service/admin/application"
	admininfra "sebshop/internal/service/admin/infrastructure"
	admininterfaces "sebshop/internal/service/admin/interfaces"
	authapp "sebshop/internal/service/auth/application"
	authinfra "sebshop/internal/service/auth/infrastructure"
	authinterfaces "sebshop/internal/service/auth/interfaces"
	cartapp "sebshop/internal/service/cart/application"
	cartinfra "sebshop/internal/service/cart/infrastructure"
	"sebshop/internal/service/cart/infrastructure/adapter"
	cartinterfaces "sebshop/internal/service/cart/interfaces"
	catalogapp "sebshop/internal/service/catalog/application"
	catalogdomain "sebshop/internal/service/catalog/domain"
	cataloginfra "sebshop/internal/service/catalog/infrastructure"
	cataloginterfaces "sebshop/internal/service/catalog/interfaces"
	checkoutapp "sebshop/internal/service/checkout/application"
	checkoutinfra "sebshop/internal/service/checkout/infrastructure"
	checkoutinterfaces "sebshop/internal/service/checkout/interfaces"
	"sebshop/internal/service/notification"
	wishlistapp "sebshop/internal/service/wishlist/application"
	wishlistinfra "sebshop/internal/service/wishlist/infrastructure"
	wishlistinterfaces "sebshop/internal/service/wishlist/interfaces"
)

const serviceName = "shop-server"

// main 函数是应用的"组装根" (Composition Root)
// 它的核心职责是：创建并组装所有依赖项，然后启动应用。
func main() {
	bootstrap.Init()
	cfg := bootstrap.GetCurrentConfig()

	// --- 基础设施 ---
	redisClient, err := redis.NewClient(cfg.Infra.Redis.Addr)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("addr", cfg.Infra.Redis.Addr).Msg("failed to connect redis")
	}

	// 商品目录走 MySQL；DSN 未配置时退化为进程内存储，方便本地起服务
	var productRepo catalogdomain.ProductRepository
	if cfg.Infra.Mysql.DSN != "" {
		db, err := cataloginfra.NewGormDB(cfg.Infra.Mysql.DSN)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("failed to connect mysql")
		}
		productRepo = cataloginfra.NewGormProductRepository(db)
	} else {
		logger.Logger.Warn().Msg("mysql dsn not configured, using in-memory product repository")
		productRepo = cataloginfra.NewMemoryProductRepository()
	}

	kafkaWriter := mq.NewKafkaWriter(cfg.Infra.Kafka.Brokers, cfg.Infra.Kafka.NotificationTopic)
	notifier := notification.NewKafkaProducer(kafkaWriter)

	tracer := otel.Tracer(serviceName)

	// --- 应用服务 ---
	catalogService := catalogapp.NewCatalogService(productRepo, tracer)

	cartRepo := cartinfra.NewRedisCartRepository(redisClient)
	cartService := cartapp.NewCartService(cartRepo, adapter.NewCatalogLocalAdapter(catalogService), notifier, tracer)

	orderRepo := checkoutinfra.NewRedisOrderRepository(redisClient)
	addressRepo := checkoutinfra.NewRedisAddressRepository(redisClient)
	checkoutService := checkoutapp.NewCheckoutService(
		cartRepo,
		orderRepo,
		addressRepo,
		notifier,
		tracer,
		time.Duration(*cfg.App.Checkout.ProcessingDelayMs)*time.Millisecond,
	)

	wishlistService := wishlistapp.NewWishlistService(wishlistinfra.NewRedisWishlistRepository(redisClient), notifier, tracer)

	authService := authapp.NewAuthService(authinfra.NewRedisUserRepository(redisClient), authinfra.NewRedisSessionStore(redisClient), tracer)
	if cfg.App.Auth.SeedAccounts {
		if err := authService.SeedDefaultAccounts(context.Background()); err != nil {
			logger.Logger.Fatal().Err(err).Msg("failed to seed default accounts")
		}
	}

	adminService := adminapp.NewAdminService(productRepo, orderRepo, admininfra.NewRedisSettingsRepository(redisClient))

	// --- HTTP 接口 ---
	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: serviceName,
		Port:        8080,
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			appCtx.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
			appCtx.Mux.Handle("/metrics", promhttp.Handler())

			cataloginterfaces.NewCatalogHandler(catalogService).RegisterRoutes(appCtx.Mux)
			cartinterfaces.NewCartHandler(cartService).RegisterRoutes(appCtx.Mux)
			checkoutinterfaces.NewCheckoutHandler(checkoutService).RegisterRoutes(appCtx.Mux)
			wishlistinterfaces.NewWishlistHandler(wishlistService).RegisterRoutes(appCtx.Mux)
			authinterfaces.NewAuthHandler(authService).RegisterRoutes(appCtx.Mux)
			admininterfaces.NewAdminHandler(adminService, catalogService, authService).RegisterRoutes(appCtx.Mux)
		},
		OnShutdown: func(ctx context.Context) {
			if err := notifier.Close(); err != nil {
				logger.Logger.Error().Err(err).Msg("error closing kafka writer")
			}
			if err := redisClient.Close(); err != nil {
				logger.Logger.Error().Err(err).Msg("error closing redis client")
			}
		},
	})
}
