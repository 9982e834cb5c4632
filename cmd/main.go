package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/repository"
	"wa_admin_202610/internal/router"
	"wa_admin_202610/internal/service"
	"wa_admin_202610/internal/task"
	"wa_admin_202610/pkg/config"
	"wa_admin_202610/pkg/database"
)

// @title WhatsApp Commerce Admin API
// @version 1.0
// @description 平台管理后台：商家、店铺、订单、支付、集成、报表与平台设置
// @host localhost:8080
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("加载配置失败", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	// 1. 初始化存储
	store, err := initStore(cfg, logger)
	if err != nil {
		logger.Error("初始化存储失败", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. 初始化依赖
	adminService := initAdminService(cfg, store, logger)

	// 3. 启动定时任务
	tasks := task.NewTaskManager(&task.TaskManagerDeps{
		Syncer:   adminService,
		Exporter: adminService,
		Logger:   logger,
	}, &task.TaskManagerConfig{
		IntegrationSyncCron: cfg.IntegrationSyncCron,
		ReportSnapshotCron:  cfg.ReportSnapshotCron,
	})
	if err := tasks.Start(); err != nil {
		logger.Error("定时任务启动失败", slog.Any("error", err))
		os.Exit(1)
	}

	// 4. 初始化路由
	r := router.NewEngine(logger)
	router.InitRoutes(r, router.NewControllers(adminService), router.Options{
		ExportCooldown: cfg.ExportCooldown,
	})

	// 5. 启动服务
	startServer(r, cfg.ServerPort, tasks, logger)
}

// ==================== 初始化函数 ====================

// initStore 按驱动创建实体存储，空库时写入演示数据
func initStore(cfg *config.Config, logger *slog.Logger) (repository.EntityStore, error) {
	var store repository.EntityStore
	if cfg.StoreDriver == "memory" {
		store = repository.NewMemoryStore()
	} else {
		db, err := database.Open(database.Options{
			Driver: cfg.StoreDriver,
			DSN:    cfg.DBDSN,
			Debug:  cfg.LogLevel <= slog.LevelDebug,
		})
		if err != nil {
			return nil, err
		}
		if err := repository.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		store = repository.NewGormStore(db)
	}

	if !cfg.StoreSeed {
		return store, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts, err := repository.Counts(ctx, store)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total > 0 {
		logger.Info("存储已有数据，跳过演示数据", slog.String("driver", store.Driver()), slog.Int("entities", total))
		return store, nil
	}

	if err := repository.Seed(ctx, store, time.Now()); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	logger.Info("演示数据已写入", slog.String("driver", store.Driver()))
	return store, nil
}

// initAdminService 组装 AdminService；导出存储初始化失败时仅禁用导出
func initAdminService(cfg *config.Config, store repository.EntityStore, logger *slog.Logger) *service.AdminService {
	opts := []service.AdminOption{
		service.WithLogger(logger),
		service.WithLatency(cfg.SimulatedLatency),
		service.WithReportCacheTTL(cfg.ReportCacheTTL),
	}

	storage, err := service.NewStorageProvider(&service.StorageConfig{
		Provider:  cfg.Storage.Provider,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		CDNDomain: cfg.Storage.CDNDomain,
		BasePath:  cfg.Storage.BasePath,
	})
	if err != nil {
		logger.Warn("报表导出存储初始化失败，导出功能不可用", slog.Any("error", err))
	} else {
		opts = append(opts, service.WithStorage(storage))
	}

	return service.NewAdminService(store, opts...)
}

// ==================== 服务启动 ====================

// startServer 启动 HTTP 服务并在收到退出信号后优雅关闭
func startServer(r *gin.Engine, port int, tasks *task.TaskManager, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 异步启动服务
	go func() {
		logger.Info("服务启动", slog.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("服务启动失败", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务强制关闭", slog.Any("error", err))
	}
	tasks.Stop()

	logger.Info("服务已退出")
}
