package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/api/dto"
	"wa_admin_202610/internal/service"
)

type HealthController struct {
	adminService *service.AdminService
}

func NewHealthController(adminService *service.AdminService) *HealthController {
	return &HealthController{adminService: adminService}
}

// Health 健康检查
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResp
// @Failure 503 {object} dto.HealthResp
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	resp := dto.HealthResp{Status: "ok", Driver: h.adminService.Driver(), Counts: map[string]int{}}

	counts, err := h.adminService.Counts(c.Request.Context())
	if err != nil {
		resp.Status = "degraded"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	for kind, n := range counts {
		resp.Counts[string(kind)] = n
	}
	c.JSON(http.StatusOK, resp)
}
