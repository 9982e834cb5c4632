package controller

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/api/dto"
	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/service"
)

// fail 统一错误响应，5xx 额外记录日志
func fail(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status >= 500 {
		_ = c.Error(err)
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.FullPath()),
			slog.Any("err", err))
	}
	c.AbortWithStatusJSON(status, apperr.ResponseOf(err))
}

// bindListQuery 解析 q / status / fields
func bindListQuery(c *gin.Context) (service.ListQuery, bool) {
	var req dto.ListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		fail(c, apperr.BadRequest(err.Error()))
		return service.ListQuery{}, false
	}
	return service.ListQuery{Q: req.Q, Status: req.Status, Fields: req.FieldList()}, true
}

// bindStatus 解析状态变更请求体
func bindStatus(c *gin.Context) (string, bool) {
	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.BadRequest("status is required"))
		return "", false
	}
	return req.Status, true
}
