package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"wa_admin_202610/internal/metrics"
)

// 导出触发来源
const (
	ExportTriggerManual   = "manual"
	ExportTriggerSchedule = "schedule"
)

var errNoStorage = errors.New("report export storage not configured")

// ExportReport 报表序列化为 JSON 写入存储，返回访问地址
func (s *AdminService) ExportReport(ctx context.Context, period, trigger string) (url string, err error) {
	defer func() { metrics.ObserveExport(trigger, err) }()

	if s.storage == nil {
		return "", errNoStorage
	}
	report, err := s.GetReportMetrics(ctx, period)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	filename := fmt.Sprintf("report-%s.json", report.Period)
	url, err = s.storage.Upload(ctx, data, filename, "application/json")
	if err != nil {
		return "", fmt.Errorf("upload report: %w", err)
	}

	s.logger.Info("[ReportExport] 报表已导出",
		slog.String("period", string(report.Period)),
		slog.String("trigger", trigger),
		slog.String("url", url))
	return url, nil
}
