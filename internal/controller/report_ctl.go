package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/api/dto"
	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/model"
	"wa_admin_202610/internal/service"
)

type ReportController struct {
	adminService *service.AdminService
}

func NewReportController(adminService *service.AdminService) *ReportController {
	return &ReportController{adminService: adminService}
}

// ==================== 统计 ====================

// Dashboard 仪表盘
// @Summary 仪表盘汇总
// @Description 变化率为近 30 天与前 30 天对比，上期为 0 时为 0
// @Tags Report
// @Produce json
// @Success 200 {object} dto.DashboardStatsResp
// @Router /api/v1/dashboard/stats [get]
func (h *ReportController) Dashboard(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Metrics 周期报表
// @Summary 周期报表
// @Tags Report
// @Produce json
// @Param period query string false "weekly|monthly|yearly (默认 monthly)"
// @Success 200 {object} model.ReportMetrics
// @Failure 400 {object} apperr.Response
// @Router /api/v1/reports [get]
func (h *ReportController) Metrics(c *gin.Context) {
	period := c.DefaultQuery("period", string(model.PeriodMonthly))
	report, err := h.adminService.GetReportMetrics(c.Request.Context(), period)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Export 导出报表
// @Summary 导出周期报表
// @Description 报表 JSON 写入存储，同一周期受冷却限制
// @Tags Report
// @Produce json
// @Param period query string false "weekly|monthly|yearly (默认 monthly)"
// @Success 201 {object} dto.ExportResp
// @Failure 400 {object} apperr.Response
// @Failure 429 {object} apperr.Response "冷却中"
// @Failure 500 {object} apperr.Response
// @Router /api/v1/reports/export [post]
func (h *ReportController) Export(c *gin.Context) {
	period := c.DefaultQuery("period", string(model.PeriodMonthly))
	url, err := h.adminService.ExportReport(c.Request.Context(), period, service.ExportTriggerManual)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ExportResp{URL: url})
}

// ==================== 状态图 ====================

// Transitions 当前状态可流转目标
// @Summary 可流转目标状态
// @Description 客户端据此只渲染合法操作
// @Tags Transition
// @Produce json
// @Param entity path string true "owners|stores|orders|payments|integrations"
// @Param status path string true "当前状态"
// @Success 200 {object} dto.TransitionsResp
// @Failure 400 {object} apperr.Response
// @Router /api/v1/transitions/{entity}/{status} [get]
func (h *ReportController) Transitions(c *gin.Context) {
	kind, ok := model.ParseKind(c.Param("entity"))
	if !ok {
		fail(c, apperr.BadRequest("unknown entity: "+c.Param("entity")))
		return
	}
	from := c.Param("status")
	if !service.IsKnownStatus(kind, from) {
		fail(c, apperr.BadRequest("unknown "+string(kind)+" status: "+from))
		return
	}
	c.JSON(http.StatusOK, dto.TransitionsResp{
		Entity:  string(kind),
		From:    from,
		Targets: service.AllowedTargets(kind, from),
	})
}
