package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/api/dto"
	"wa_admin_202610/internal/service"
)

type IntegrationController struct {
	adminService *service.AdminService
}

func NewIntegrationController(adminService *service.AdminService) *IntegrationController {
	return &IntegrationController{adminService: adminService}
}

// List 集成列表
// @Summary 第三方集成列表
// @Tags Integration
// @Produce json
// @Param q query string false "检索关键字"
// @Param status query string false "状态 active|inactive|all"
// @Param fields query string false "检索字段 (默认 name,type)"
// @Success 200 {object} dto.ListResp[dto.IntegrationView]
// @Router /api/v1/integrations [get]
func (h *IntegrationController) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	list, err := h.adminService.QueryIntegrations(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResp(list))
}

// Get 集成详情
// @Summary 集成详情
// @Tags Integration
// @Produce json
// @Param id path string true "集成 ID"
// @Success 200 {object} dto.IntegrationView
// @Failure 404 {object} apperr.Response
// @Router /api/v1/integrations/{id} [get]
func (h *IntegrationController) Get(c *gin.Context) {
	view, err := h.adminService.GetIntegration(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Toggle 启停集成
// @Summary 启用/停用集成
// @Tags Integration
// @Accept json
// @Produce json
// @Param id path string true "集成 ID"
// @Param request body dto.UpdateStatusReq true "目标状态 active|inactive"
// @Success 200 {object} dto.IntegrationView
// @Failure 400 {object} apperr.Response
// @Failure 404 {object} apperr.Response
// @Failure 409 {object} apperr.Response
// @Router /api/v1/integrations/{id}/status [patch]
func (h *IntegrationController) Toggle(c *gin.Context) {
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	view, err := h.adminService.ToggleIntegration(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
