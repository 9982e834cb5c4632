package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/api/dto"
	"wa_admin_202610/internal/service"
)

type OwnerController struct {
	adminService *service.AdminService
}

func NewOwnerController(adminService *service.AdminService) *OwnerController {
	return &OwnerController{adminService: adminService}
}

// List 商家列表
// @Summary 商家列表
// @Description 按插入顺序返回商家，q 为不区分大小写的子串检索，status 为 all 或空时不过滤
// @Tags Owner
// @Produce json
// @Param q query string false "检索关键字"
// @Param status query string false "状态 active|suspended|all"
// @Param fields query string false "检索字段，逗号分隔 (默认 name,email,store,country)"
// @Success 200 {object} dto.ListResp[dto.OwnerView]
// @Failure 400 {object} apperr.Response
// @Router /api/v1/owners [get]
func (h *OwnerController) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	list, err := h.adminService.QueryBusinessOwners(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResp(list))
}

// Get 商家详情
// @Summary 商家详情
// @Tags Owner
// @Produce json
// @Param id path string true "商家 ID"
// @Success 200 {object} dto.OwnerView
// @Failure 404 {object} apperr.Response
// @Router /api/v1/owners/{id} [get]
func (h *OwnerController) Get(c *gin.Context) {
	view, err := h.adminService.GetBusinessOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateStatus 启用/停用商家
// @Summary 修改商家状态
// @Tags Owner
// @Accept json
// @Produce json
// @Param id path string true "商家 ID"
// @Param request body dto.UpdateStatusReq true "目标状态"
// @Success 200 {object} dto.OwnerView
// @Failure 400 {object} apperr.Response
// @Failure 404 {object} apperr.Response
// @Failure 409 {object} apperr.Response "非法状态流转"
// @Router /api/v1/owners/{id}/status [patch]
func (h *OwnerController) UpdateStatus(c *gin.Context) {
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	view, err := h.adminService.UpdateBusinessOwnerStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Delete 删除商家
// @Summary 删除商家 (硬删除)
// @Tags Owner
// @Produce json
// @Param id path string true "商家 ID"
// @Success 200 {object} map[string]string "{"message": "success"}"
// @Failure 404 {object} apperr.Response
// @Router /api/v1/owners/{id} [delete]
func (h *OwnerController) Delete(c *gin.Context) {
	if err := h.adminService.DeleteBusinessOwner(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
