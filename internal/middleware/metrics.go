package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/metrics"
)

// Metrics 请求计数与耗时，path 取路由模板避免高基数
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
