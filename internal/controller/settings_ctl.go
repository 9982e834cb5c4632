package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/model"
	"wa_admin_202610/internal/service"
)

type SettingsController struct {
	adminService *service.AdminService
}

func NewSettingsController(adminService *service.AdminService) *SettingsController {
	return &SettingsController{adminService: adminService}
}

// Get 平台设置
// @Summary 获取平台设置
// @Tags Settings
// @Produce json
// @Success 200 {object} model.PlatformSettings
// @Router /api/v1/settings [get]
func (h *SettingsController) Get(c *gin.Context) {
	settings, err := h.adminService.GetPlatformSettings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update 更新平台设置
// @Summary 更新平台设置
// @Description 按分组、按字段合并，未提交的分组和字段保持不变；校验失败返回字段明细
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body model.SettingsPatch true "按分组提交需要修改的字段"
// @Success 200 {object} model.PlatformSettings
// @Failure 400 {object} apperr.Response
// @Router /api/v1/settings [put]
func (h *SettingsController) Update(c *gin.Context) {
	var patch model.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, apperr.BadRequest("invalid settings payload: "+err.Error()))
		return
	}
	merged, err := h.adminService.UpdatePlatformSettings(c.Request.Context(), patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, merged)
}
