package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	https_server "ResearchAssistant/api/http"
	"ResearchAssistant/internal/config"
	"ResearchAssistant/pkg/zlog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to the toml config file")
	flag.Parse()

	// 1. 加载配置
	conf, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	zlog.Init(zlog.Options{
		LogPath:    conf.LogConfig.LogPath,
		Level:      conf.LogConfig.Level,
		MaxSizeMB:  conf.LogConfig.MaxSizeMB,
		MaxBackups: conf.LogConfig.MaxBackups,
		MaxAgeDays: conf.LogConfig.MaxAgeDays,
	})
	defer zlog.Sync()

	gin.SetMode(gin.ReleaseMode)

	// 2. 启动 HTTP 服务
	addr := conf.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: https_server.NewEngine(conf),
	}

	go func() {
		zlog.Info("server starting",
			zap.String("app", conf.MainConfig.AppName),
			zap.String("addr", addr),
			zap.Bool("tls", conf.TLSEnabled()))

		var err error
		if conf.TLSEnabled() {
			err = srv.ListenAndServeTLS(conf.MainConfig.CertFile, conf.MainConfig.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server start failed", zap.Error(err))
		}
	}()

	// 3. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 等待退出信号
	<-quit

	zlog.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}

	zlog.Info("server stopped")
}
