package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/api/dto"
	"wa_admin_202610/internal/service"
)

type OrderController struct {
	adminService *service.AdminService
}

func NewOrderController(adminService *service.AdminService) *OrderController {
	return &OrderController{adminService: adminService}
}

// List 订单列表
// @Summary 订单列表
// @Tags Order
// @Produce json
// @Param q query string false "检索关键字"
// @Param status query string false "状态 pending|processing|shipped|completed|cancelled|refunded|all"
// @Param fields query string false "检索字段，逗号分隔 (默认 id,customer,store)"
// @Success 200 {object} dto.ListResp[dto.OrderView]
// @Router /api/v1/orders [get]
func (h *OrderController) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	list, err := h.adminService.QueryOrders(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResp(list))
}

// Get 订单详情
// @Summary 订单详情
// @Tags Order
// @Produce json
// @Param id path string true "订单 ID"
// @Success 200 {object} dto.OrderView
// @Failure 404 {object} apperr.Response
// @Router /api/v1/orders/{id} [get]
func (h *OrderController) Get(c *gin.Context) {
	view, err := h.adminService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateStatus 订单状态流转
// @Summary 修改订单状态
// @Description pending→processing→shipped→completed，未完成订单可取消，已完成订单可退款
// @Tags Order
// @Accept json
// @Produce json
// @Param id path string true "订单 ID"
// @Param request body dto.UpdateStatusReq true "目标状态"
// @Success 200 {object} dto.OrderView
// @Failure 400 {object} apperr.Response
// @Failure 404 {object} apperr.Response
// @Failure 409 {object} apperr.Response
// @Router /api/v1/orders/{id}/status [patch]
func (h *OrderController) UpdateStatus(c *gin.Context) {
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	view, err := h.adminService.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
