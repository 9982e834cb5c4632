package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/apperr"
	"wa_admin_202610/internal/model"
)

// ==================== 导出限流中间件 ====================

// ExportRateLimit 报表导出冷却，按 period 维度限流
//
// 使用示例:
//
//	reports.POST("/export",
//	    middleware.ExportRateLimit(limiter, time.Minute),
//	    reportCtl.Export,
//	)
//
// interval <= 0 时不限流；仅 2xx 响应计入冷却
func ExportRateLimit(limiter *CooldownLimiter, interval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if interval <= 0 {
			c.Next()
			return
		}

		period := c.DefaultQuery("period", string(model.PeriodMonthly))
		if _, ok := model.ParsePeriod(period); !ok {
			// 非法周期交给 handler 返回 400，不占用冷却
			c.Next()
			return
		}

		key := "export:" + period
		result := limiter.Check(key, interval)
		if !result.Allowed {
			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			err := &apperr.CooldownError{RetryAfterSeconds: retryAfter}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(apperr.HTTPStatus(err), apperr.ResponseOf(err))
			return
		}

		c.Next()

		// 导出失败不计入冷却
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			limiter.Reset(key)
		}
	}
}
