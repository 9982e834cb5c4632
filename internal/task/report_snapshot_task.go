package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"wa_admin_202610/internal/metrics"
	"wa_admin_202610/internal/model"
	"wa_admin_202610/internal/service"
)

// ==================== ReportSnapshotTask 报表快照任务 ====================

// ReportExporter 报表导出依赖
type ReportExporter interface {
	ExportReport(ctx context.Context, period, trigger string) (string, error)
}

// ReportSnapshotTask 定时导出报表快照
type ReportSnapshotTask struct {
	exporter ReportExporter
	expr     string
	period   model.Period
	timeout  time.Duration
	logger   *slog.Logger
	cron     *cron.Cron
}

// NewReportSnapshotTask 创建报表快照任务，默认导出月度报表
func NewReportSnapshotTask(exporter ReportExporter, expr string, logger *slog.Logger) *ReportSnapshotTask {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportSnapshotTask{
		exporter: exporter,
		expr:     expr,
		period:   model.PeriodMonthly,
		timeout:  2 * time.Minute,
		logger:   logger,
		cron:     cron.New(cron.WithSeconds()),
	}
}

func (t *ReportSnapshotTask) Name() string { return "report_snapshot" }

// Start 注册定时任务，启动时不立即导出
func (t *ReportSnapshotTask) Start() error {
	if _, err := t.cron.AddFunc(t.expr, t.run); err != nil {
		return fmt.Errorf("[ReportSnapshotTask] invalid cron expression %q: %w", t.expr, err)
	}
	t.cron.Start()
	t.logger.Info("[ReportSnapshotTask] 已启动",
		slog.String("cron", t.expr),
		slog.String("period", string(t.period)))
	return nil
}

// Stop 停止任务
func (t *ReportSnapshotTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	t.logger.Info("[ReportSnapshotTask] 已停止")
}

func (t *ReportSnapshotTask) run() {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()
	_, _ = t.Execute(ctx)
}

// Execute 导出一次报表快照，返回访问地址
func (t *ReportSnapshotTask) Execute(ctx context.Context) (url string, err error) {
	defer func() { metrics.ObserveTask(t.Name(), err) }()

	url, err = t.exporter.ExportReport(ctx, string(t.period), service.ExportTriggerSchedule)
	if err != nil {
		t.logger.Error("[ReportSnapshotTask] 导出失败", slog.Any("error", err))
		return "", err
	}
	return url, nil
}
