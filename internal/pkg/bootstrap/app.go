// internal/pkg/bootstrap/app.go
package bootstrap

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"sebshop/internal/pkg/logger"
	"sebshop/internal/pkg/tracing"
)

// AppCtx 在注册路由时传递给各个服务模块。
type AppCtx struct {
	Mux *http.ServeMux
}

// AppInfo 包含了启动一个服务进程所需的全部特定信息。
type AppInfo struct {
	ServiceName      string
	Port             int
	RegisterHandlers func(appCtx AppCtx)       // 每个服务在这里注册自己的 HTTP 路由
	OnShutdown       func(ctx context.Context) // 可选的收尾回调（关闭连接池等）
}

// StartService 封装了所有服务的通用启动和优雅关停逻辑。
func StartService(info AppInfo) {
	logger.Init(info.ServiceName)

	// 1. 初始化 Tracer
	tp, err := tracing.InitTracerProvider(info.ServiceName, GetCurrentConfig().Infra.Jaeger.Endpoint)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to initialize tracer provider")
	}

	// 2. 创建并启动 HTTP Server
	mux := http.NewServeMux()
	if info.RegisterHandlers != nil {
		info.RegisterHandlers(AppCtx{Mux: mux})
	}
	port := info.Port
	if GetCurrentConfig().Server.Port != 0 {
		port = GetCurrentConfig().Server.Port
	}
	server := &http.Server{Addr: ":" + strconv.Itoa(port), Handler: mux}
	go func() {
		logger.Logger.Info().Msgf("%s listening on %s", info.ServiceName, server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msgf("could not listen on %s", server.Addr)
		}
	}()

	// 3. 阻塞等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Logger.Info().Msgf("Shutting down service %s...", info.ServiceName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 4. 关停顺序：先停接收流量，再执行业务收尾，最后冲刷 trace
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("error shutting down http server")
	}
	if info.OnShutdown != nil {
		info.OnShutdown(ctx)
	}
	if err := tp.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("error shutting down tracer provider")
	}

	logger.Logger.Info().Msgf("Service %s gracefully shut down.", info.ServiceName)
}
