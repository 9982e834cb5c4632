package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"wa_admin_202610/internal/metrics"
)

// ==================== IntegrationSyncTask 集成同步任务 ====================

// IntegrationSyncer 集成同步依赖
type IntegrationSyncer interface {
	StampIntegrationSync(ctx context.Context) (int, error)
}

// IntegrationSyncTask 定时刷新活跃集成的 last_sync_at
type IntegrationSyncTask struct {
	syncer  IntegrationSyncer
	expr    string
	timeout time.Duration
	logger  *slog.Logger
	cron    *cron.Cron
}

// NewIntegrationSyncTask 创建集成同步任务，expr 为六段式 cron 表达式
func NewIntegrationSyncTask(syncer IntegrationSyncer, expr string, logger *slog.Logger) *IntegrationSyncTask {
	if logger == nil {
		logger = slog.Default()
	}
	return &IntegrationSyncTask{
		syncer:  syncer,
		expr:    expr,
		timeout: time.Minute,
		logger:  logger,
		cron:    cron.New(cron.WithSeconds()),
	}
}

func (t *IntegrationSyncTask) Name() string { return "integration_sync" }

// Start 执行首次同步并注册定时任务
func (t *IntegrationSyncTask) Start() error {
	if _, err := t.cron.AddFunc(t.expr, t.run); err != nil {
		return fmt.Errorf("[IntegrationSyncTask] invalid cron expression %q: %w", t.expr, err)
	}

	go t.run()

	t.cron.Start()
	t.logger.Info("[IntegrationSyncTask] 已启动", slog.String("cron", t.expr))
	return nil
}

// Stop 停止任务，等待正在执行的同步结束
func (t *IntegrationSyncTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	t.logger.Info("[IntegrationSyncTask] 已停止")
}

func (t *IntegrationSyncTask) run() {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()
	_ = t.Execute(ctx)
}

// Execute 执行一次同步
func (t *IntegrationSyncTask) Execute(ctx context.Context) (err error) {
	defer func() { metrics.ObserveTask(t.Name(), err) }()

	n, err := t.syncer.StampIntegrationSync(ctx)
	if err != nil {
		t.logger.Error("[IntegrationSyncTask] 同步失败", slog.Any("error", err))
		return err
	}
	t.logger.Info("[IntegrationSyncTask] 同步完成", slog.Int("updated", n))
	return nil
}
