package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"wa_admin_202610/internal/apperr"
)

// Recovery panic 写入结构化日志并返回统一错误体，gin 自带的文本堆栈输出丢弃
func Recovery(l *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		l.LogAttrs(c.Request.Context(), slog.LevelError, "panic_recovered",
			slog.String("request_id", GetRequestID(c)),
			slog.Any("panic", recovered),
			slog.String("stack", string(debug.Stack())),
		)

		err := fmt.Errorf("panic: %v", recovered)
		c.AbortWithStatusJSON(apperr.HTTPStatus(err), apperr.ResponseOf(err))
	})
}
