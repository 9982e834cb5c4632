package task

import (
	"log/slog"
	"sort"
)

// ==================== TaskManager 定时任务管理器 ====================

// Task 定时任务生命周期
type Task interface {
	Name() string
	Start() error
	Stop()
}

// TaskManagerDeps 任务管理器依赖
type TaskManagerDeps struct {
	Syncer   IntegrationSyncer
	Exporter ReportExporter
	Logger   *slog.Logger
}

// TaskManagerConfig 任务管理器配置，cron 表达式为空表示禁用
type TaskManagerConfig struct {
	IntegrationSyncCron string
	ReportSnapshotCron  string
}

// TaskManager 统一管理定时任务
type TaskManager struct {
	tasks   []Task
	started []Task
	logger  *slog.Logger
}

// NewTaskManager 创建任务管理器
func NewTaskManager(deps *TaskManagerDeps, cfg *TaskManagerConfig) *TaskManager {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tm := &TaskManager{logger: logger}

	if cfg.IntegrationSyncCron != "" && deps.Syncer != nil {
		tm.tasks = append(tm.tasks, NewIntegrationSyncTask(deps.Syncer, cfg.IntegrationSyncCron, logger))
	}
	if cfg.ReportSnapshotCron != "" && deps.Exporter != nil {
		tm.tasks = append(tm.tasks, NewReportSnapshotTask(deps.Exporter, cfg.ReportSnapshotCron, logger))
	}
	return tm
}

// ==================== 生命周期管理 ====================

// Start 启动所有任务，任一失败时停止已启动的任务并返回错误
func (tm *TaskManager) Start() error {
	tm.logger.Info("[TaskManager] 正在启动定时任务...", slog.Any("tasks", tm.Names()))

	for _, t := range tm.tasks {
		if err := t.Start(); err != nil {
			tm.Stop()
			return err
		}
		tm.started = append(tm.started, t)
	}

	tm.logger.Info("[TaskManager] 定时任务已全部启动")
	return nil
}

// Stop 停止所有已启动的任务
func (tm *TaskManager) Stop() {
	for _, t := range tm.started {
		t.Stop()
	}
	tm.started = nil
	tm.logger.Info("[TaskManager] 定时任务已全部停止")
}

// ==================== 状态查询 ====================

// Names 已注册任务名称，按字母排序
func (tm *TaskManager) Names() []string {
	names := make([]string, 0, len(tm.tasks))
	for _, t := range tm.tasks {
		names = append(names, t.Name())
	}
	sort.Strings(names)
	return names
}
