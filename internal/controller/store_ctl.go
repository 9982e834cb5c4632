package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/api/dto"
	"wa_admin_202610/internal/service"
)

type StoreController struct {
	adminService *service.AdminService
}

func NewStoreController(adminService *service.AdminService) *StoreController {
	return &StoreController{adminService: adminService}
}

// List 店铺列表
// @Summary 店铺列表
// @Tags Store
// @Produce json
// @Param q query string false "检索关键字"
// @Param status query string false "状态 active|suspended|all"
// @Param fields query string false "检索字段，逗号分隔 (默认 name,owner,category)"
// @Success 200 {object} dto.ListResp[dto.StoreView]
// @Failure 400 {object} apperr.Response
// @Router /api/v1/stores [get]
func (h *StoreController) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	list, err := h.adminService.QueryStores(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResp(list))
}

// Get 店铺详情
// @Summary 店铺详情
// @Tags Store
// @Produce json
// @Param id path string true "店铺 ID"
// @Success 200 {object} dto.StoreView
// @Failure 404 {object} apperr.Response
// @Router /api/v1/stores/{id} [get]
func (h *StoreController) Get(c *gin.Context) {
	view, err := h.adminService.GetStore(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateStatus 启用/停用店铺
// @Summary 修改店铺状态
// @Tags Store
// @Accept json
// @Produce json
// @Param id path string true "店铺 ID"
// @Param request body dto.UpdateStatusReq true "目标状态"
// @Success 200 {object} dto.StoreView
// @Failure 400 {object} apperr.Response
// @Failure 404 {object} apperr.Response
// @Failure 409 {object} apperr.Response
// @Router /api/v1/stores/{id}/status [patch]
func (h *StoreController) UpdateStatus(c *gin.Context) {
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	view, err := h.adminService.UpdateStoreStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Delete 删除店铺
// @Summary 删除店铺 (硬删除)
// @Tags Store
// @Produce json
// @Param id path string true "店铺 ID"
// @Success 200 {object} map[string]string "{"message": "success"}"
// @Failure 404 {object} apperr.Response
// @Router /api/v1/stores/{id} [delete]
func (h *StoreController) Delete(c *gin.Context) {
	if err := h.adminService.DeleteStore(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
