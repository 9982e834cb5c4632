package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/api/dto"
	"wa_admin_202610/internal/service"
)

type PaymentController struct {
	adminService *service.AdminService
}

func NewPaymentController(adminService *service.AdminService) *PaymentController {
	return &PaymentController{adminService: adminService}
}

// List 支付流水
// @Summary 支付列表
// @Tags Payment
// @Produce json
// @Param q query string false "检索关键字"
// @Param status query string false "状态 pending|completed|failed|refunded|all"
// @Param fields query string false "检索字段 (默认 id,order,store,transactionId,method)"
// @Success 200 {object} dto.ListResp[dto.PaymentView]
// @Router /api/v1/payments [get]
func (h *PaymentController) List(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	list, err := h.adminService.QueryPayments(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResp(list))
}

// Get 支付详情
// @Summary 支付详情
// @Tags Payment
// @Produce json
// @Param id path string true "支付 ID"
// @Success 200 {object} dto.PaymentView
// @Failure 404 {object} apperr.Response
// @Router /api/v1/payments/{id} [get]
func (h *PaymentController) Get(c *gin.Context) {
	view, err := h.adminService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateStatus 支付状态流转
// @Summary 修改支付状态
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "支付 ID"
// @Param request body dto.UpdateStatusReq true "目标状态"
// @Success 200 {object} dto.PaymentView
// @Failure 400 {object} apperr.Response
// @Failure 404 {object} apperr.Response
// @Failure 409 {object} apperr.Response
// @Router /api/v1/payments/{id}/status [patch]
func (h *PaymentController) UpdateStatus(c *gin.Context) {
	status, ok := bindStatus(c)
	if !ok {
		return
	}
	view, err := h.adminService.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
